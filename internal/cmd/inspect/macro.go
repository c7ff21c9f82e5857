package inspect

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eolymp/go-textree"
	"github.com/eolymp/go-textree/internal/cmd/cmdutil"
	"github.com/eolymp/go-textree/internal/view"
)

const snippetLength = 80

type macroView struct {
	Name        string            `json:"name" yaml:"name"`
	Line        int               `json:"line" yaml:"line"`
	Declaration string            `json:"declaration" yaml:"declaration"`
	Arguments   []string          `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Options     map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
	Snippet     string            `json:"snippet" yaml:"snippet"`
}

// NewCmdMacro creates the macro command.
func NewCmdMacro() *cobra.Command {
	var first, environment bool

	cmd := &cobra.Command{
		Use:   "macro <file> <name>",
		Short: "List commands or environments with the given name",
		Example: `  # All authors
  texparse macro main.tex author

  # Only the first \title
  texparse macro main.tex '\title' --first

  # Environments
  texparse macro main.tex figure --env`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			_, tree, err := env.ParseFile(args[0])
			if err != nil {
				return err
			}

			var nodes []*latex.Node
			switch {
			case environment:
				nodes = tree.Environments(args[1])
			case first:
				if n := tree.Macro(args[1]); n != nil {
					nodes = append(nodes, n)
				}
			default:
				nodes = tree.Macros(args[1])
			}

			env.Logger.Debug("Macros found", zap.String("name", args[1]), zap.Int("count", len(nodes)))

			views := make([]macroView, 0, len(nodes))
			for _, n := range nodes {
				views = append(views, macroView{
					Name:        n.Name(),
					Line:        n.Line,
					Declaration: n.Declaration(),
					Arguments:   n.Arguments(),
					Options:     options(n),
					Snippet:     n.Snippet(),
				})
			}

			return env.Renderer.Render(views, func() {
				for _, v := range views {
					env.Renderer.RenderText(fmt.Sprintf("%d: %s", v.Line, view.Truncate(v.Snippet, snippetLength)))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&first, "first", false, "show only the first command")
	cmd.Flags().BoolVar(&environment, "env", false, "look for environments instead of commands")

	return cmd
}

func options(n *latex.Node) map[string]string {
	if len(n.Options()) == 0 {
		return nil
	}

	return n.OptionMap()
}
