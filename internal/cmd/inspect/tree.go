// Package inspect provides commands which look into a single parsed document: tree, latex, macro and grep.
package inspect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eolymp/go-textree"
	"github.com/eolymp/go-textree/internal/cmd/cmdutil"
)

// nodeView is a node as shown in structured output
type nodeView struct {
	Type     string      `json:"type" yaml:"type"`
	Line     int         `json:"line" yaml:"line"`
	Data     string      `json:"data,omitempty" yaml:"data,omitempty"`
	Open     *nodeView   `json:"open,omitempty" yaml:"open,omitempty"`
	Close    *nodeView   `json:"close,omitempty" yaml:"close,omitempty"`
	Children []*nodeView `json:"children,omitempty" yaml:"children,omitempty"`
}

func newNodeView(n *latex.Node) *nodeView {
	if n == nil {
		return nil
	}

	v := &nodeView{Type: n.Type(), Line: n.Line, Open: newNodeView(n.Open), Close: newNodeView(n.Close)}

	switch n.Kind {
	case latex.VerbatimKind, latex.MathKind:
		v.Data = n.Snippet()
	case latex.TextKind, latex.WhitespaceKind, latex.CommentKind, latex.CommandKind, latex.EnvironmentKind:
		v.Data = n.Data
	}

	for _, child := range n.Children {
		v.Children = append(v.Children, newNodeView(child))
	}

	return v
}

// NewCmdTree creates the tree command.
func NewCmdTree() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print parse tree of a document",
		Example: `  # Debug dump, one node per line
  texparse tree main.tex

  # Full tree as JSON
  texparse tree main.tex -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			_, tree, err := env.ParseFile(args[0])
			if err != nil {
				return err
			}

			return env.Renderer.Render(newNodeView(tree.Root), func() {
				env.Renderer.RenderText(tree.TreeString())
			})
		},
	}
}

// NewCmdLatex creates the latex command.
func NewCmdLatex() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "latex <file>",
		Short: "Parse a document and print it back",
		Long: `Parse a document and print the source regenerated from the tree.

With --check nothing is printed, the command fails if regenerated source differs from the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			doc, tree, err := env.ParseFile(args[0])
			if err != nil {
				return err
			}

			if !check {
				_, err = cmd.OutOrStdout().Write([]byte(tree.Latex()))
				return err
			}

			if tree.Latex() != doc.Contents() {
				return fmt.Errorf("%s: regenerated source differs from the file", doc.Path())
			}

			env.Renderer.Success(doc.Path() + " round trip is exact")
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify that regenerated source matches the file")

	return cmd
}
