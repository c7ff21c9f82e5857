// Package cmdutil holds helpers shared by texparse commands.
package cmdutil

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eolymp/go-textree"
	"github.com/eolymp/go-textree/internal/config"
	"github.com/eolymp/go-textree/internal/source"
	"github.com/eolymp/go-textree/internal/view"
)

// Env is what every command needs: configuration, output and logger.
type Env struct {
	Config   *config.Config
	Renderer *view.Renderer
	Logger   *zap.Logger
}

// Setup loads configuration and applies global flags on top of it. Output goes to the command writers, so
// tests may capture it with SetOut and SetErr.
func Setup(cmd *cobra.Command) (*Env, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.OutputFormat = f.Value.String()
	}

	if f := cmd.Flags().Lookup("no-color"); f != nil && f.Changed {
		cfg.NoColor, _ = cmd.Flags().GetBool("no-color")
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	if err := view.ValidateFormat(cfg.OutputFormat); err != nil {
		return nil, err
	}

	renderer := view.NewRenderer(view.Format(cfg.OutputFormat), cfg.NoColor)
	renderer.SetWriter(cmd.OutOrStdout())

	logger := NewLogger(cmd.ErrOrStderr(), cfg.Level())
	logger.Debug("Configuration loaded", zap.String("path", path), zap.String("output", cfg.OutputFormat))

	return &Env{Config: cfg, Renderer: renderer, Logger: logger}, nil
}

// NewLogger creates console logger writing entries at the given level and above to w.
func NewLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.AddSync(w), level)
	return zap.New(core)
}

// ParseFile loads and parses a LaTeX document.
func (e *Env) ParseFile(path string) (*source.Document, *latex.Tree, error) {
	doc, err := source.Load(path)
	if err != nil {
		return nil, nil, err
	}

	tree, err := doc.Parse()
	if err != nil {
		return nil, nil, err
	}

	e.Logger.Debug("Document parsed", zap.String("file", path), zap.Int("bytes", len(doc.Contents())),
		zap.Int("nodes", count(tree.Root)))

	return doc, tree, nil
}

func count(root *latex.Node) (n int) {
	latex.Walk(root, func(*latex.Node) bool {
		n++
		return true
	})

	return
}
