// Package meta provides commands working with document metadata: meta, check and watch.
package meta

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eolymp/go-textree/internal/cmd/cmdutil"
	"github.com/eolymp/go-textree/metadata"
)

// maxParallel limits number of documents parsed at once
const maxParallel = 8

type documentView struct {
	File              string `json:"file" yaml:"file"`
	metadata.Document `yaml:",inline"`
}

// NewCmdMeta creates the meta command.
func NewCmdMeta() *cobra.Command {
	return &cobra.Command{
		Use:   "meta <file>...",
		Short: "Show document metadata",
		Long: `Show document class, title, authors, packages, bibliography files and the pinned toolchain.

Several files are parsed in parallel, output keeps the order of arguments.`,
		Example: `  texparse meta main.tex
  texparse meta *.tex -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			docs, err := extractAll(cmd.Context(), env, args)
			if err != nil {
				return err
			}

			return env.Renderer.Render(docs, func() {
				for i, doc := range docs {
					if i > 0 {
						env.Renderer.RenderText("")
					}

					renderPlain(env, doc)
				}
			})
		},
	}
}

// extractAll parses files in parallel, the result keeps order of the files
func extractAll(ctx context.Context, env *cmdutil.Env, files []string) ([]documentView, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	docs := make([]documentView, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			doc, err := extract(env, file)
			if err != nil {
				return err
			}

			docs[i] = documentView{File: file, Document: *doc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

func extract(env *cmdutil.Env, file string) (*metadata.Document, error) {
	_, tree, err := env.ParseFile(file)
	if err != nil {
		return nil, err
	}

	doc, err := metadata.Extract(tree, env.Config.ToolchainMacro)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	env.Logger.Debug("Metadata extracted", zap.String("file", file), zap.String("class", doc.Class),
		zap.Int("authors", len(doc.Authors)))

	return doc, nil
}

func renderPlain(env *cmdutil.Env, doc documentView) {
	r := env.Renderer

	r.RenderKeyValue("File", doc.File)
	r.RenderKeyValue("Class", doc.Class)
	r.RenderKeyValue("Options", strings.Join(slices.Sorted(maps.Keys(doc.ClassOptions)), ", "))

	if doc.FontSize > 0 {
		r.RenderKeyValue("Font size", strconv.FormatFloat(float64(doc.FontSize), 'f', -1, 32)+"pt")
	}

	r.RenderKeyValue("Title", doc.Title)
	r.RenderKeyValue("Authors", strings.Join(doc.Authors, "; "))
	r.RenderKeyValue("Date", doc.Date)

	var packages []string
	for _, pkg := range doc.Packages {
		packages = append(packages, pkg.Name)
	}

	r.RenderKeyValue("Packages", strings.Join(packages, ", "))
	r.RenderKeyValue("Bibliography", strings.Join(doc.Bibliographies, ", "))
	r.RenderKeyValue("Toolchain", doc.Toolchain)
}
