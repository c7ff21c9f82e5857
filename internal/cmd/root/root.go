// Package root provides the root command for the texparse CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/eolymp/go-textree/internal/cmd/inspect"
	"github.com/eolymp/go-textree/internal/cmd/meta"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// NewCmdRoot creates the root command for texparse.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texparse",
		Short: "Lossless LaTeX parser",
		Long: `texparse parses LaTeX documents into a tree which keeps every byte of the source.

It prints parse trees, finds commands and environments, searches documents with
regular expressions and extracts document metadata.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/texparse/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "plain", "output format: plain, json, yaml")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages to stderr")

	cmd.AddCommand(inspect.NewCmdTree())
	cmd.AddCommand(inspect.NewCmdLatex())
	cmd.AddCommand(inspect.NewCmdMacro())
	cmd.AddCommand(inspect.NewCmdGrep())
	cmd.AddCommand(meta.NewCmdMeta())
	cmd.AddCommand(meta.NewCmdCheck())
	cmd.AddCommand(meta.NewCmdWatch())

	return cmd
}
