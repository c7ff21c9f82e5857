package inspect

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/eolymp/go-textree/internal/cmd/cmdutil"
)

type matchView struct {
	File   string   `json:"file" yaml:"file"`
	Line   int      `json:"line" yaml:"line"`
	Column int      `json:"column" yaml:"column"`
	Groups []string `json:"groups" yaml:"groups"`
	Node   string   `json:"node" yaml:"node"`
	Offset int      `json:"offset" yaml:"offset"`
}

// NewCmdGrep creates the grep command.
func NewCmdGrep() *cobra.Command {
	return &cobra.Command{
		Use:   "grep <pattern> <file>...",
		Short: "Search documents with a regular expression",
		Long: `Search documents with a regular expression and report nodes containing each match.

Pattern uses Go regular expression syntax, PCRE style patterns with delimiters and flags
(/title/i) are accepted as well.`,
		Example: `  texparse grep '\\section\{' main.tex
  texparse grep '/todo/i' chapters/*.tex -o json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			views := make([]matchView, 0)
			for _, file := range args[1:] {
				_, tree, err := env.ParseFile(file)
				if err != nil {
					return err
				}

				matches, err := tree.MatchAll(args[0])
				if err != nil {
					return err
				}

				text := tree.Latex()
				for _, m := range matches {
					start := strings.LastIndexByte(text[:m.Start], '\n') + 1

					end := strings.IndexByte(text[m.Start:], '\n')
					if end < 0 {
						end = len(text)
					} else {
						end += m.Start
					}

					column := utf8.RuneCountInString(text[start:m.Start])
					length := utf8.RuneCountInString(text[m.Start:min(m.End, end)])

					if !env.Renderer.Structured() {
						env.Renderer.RenderMatch(file, m.Line, text[start:end], column, length)
					}

					v := matchView{File: file, Line: m.Line, Column: column + 1, Groups: m.Groups, Offset: m.Offset}
					if m.Node != nil {
						v.Node = m.Node.Type()
					}

					views = append(views, v)
				}
			}

			if len(views) == 0 && !env.Renderer.Structured() {
				return fmt.Errorf("no matches for %q", args[0])
			}

			return env.Renderer.Render(views, nil)
		},
	}
}
