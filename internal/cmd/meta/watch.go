package meta

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eolymp/go-textree/internal/cmd/cmdutil"
)

// NewCmdWatch creates the watch command.
func NewCmdWatch() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Show metadata every time the document changes",
		Long: `Show document metadata and print it again every time the file is written.

Metadata is reloaded once the file stays unchanged for watch_debounce. Parse errors are reported without stopping.
Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return watch(ctx, env, args[0])
		},
	}
}

func watch(ctx context.Context, env *cmdutil.Env, file string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	defer watcher.Close()

	// editors often replace the file, watching the directory survives that
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	env.Logger.Info("Started watching for changes", zap.String("file", file))
	show(env, file)

	name := filepath.Clean(file)
	delay := env.Config.WatchDebounce.Duration

	// writes come in bursts (truncate, then write), reload once they settle
	var timer *time.Timer
	var reload <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			env.Logger.Info("Stopping file watcher (context cancelled)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != name || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}

			env.Logger.Debug("Document event", zap.String("file", file), zap.Stringer("op", event.Op))

			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}

			reload = timer.C

		case <-reload:
			reload = nil

			env.Logger.Info("Document changed, reloading", zap.String("file", file))
			show(env, file)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			env.Logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func show(env *cmdutil.Env, file string) {
	doc, err := extract(env, file)
	if err != nil {
		env.Renderer.Error(err.Error())
		return
	}

	v := documentView{File: file, Document: *doc}

	err = env.Renderer.Render(v, func() {
		renderPlain(env, v)
	})

	if err != nil {
		env.Logger.Error("Failed to render metadata", zap.String("file", file), zap.Error(err))
	}
}
