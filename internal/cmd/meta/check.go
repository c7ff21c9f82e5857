package meta

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eolymp/go-textree/internal/cmd/cmdutil"
	"github.com/eolymp/go-textree/metadata"
)

type checkResult struct {
	File      string `json:"file" yaml:"file"`
	OK        bool   `json:"ok" yaml:"ok"`
	Class     string `json:"class,omitempty" yaml:"class,omitempty"`
	Toolchain string `json:"toolchain,omitempty" yaml:"toolchain,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	var constraint string
	var requireToolchain bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that documents parse and use supported class and toolchain",
		Long: `Check that documents parse, use a known document class and pin a toolchain version
which satisfies the configured constraint (toolchain_constraint or --constraint).`,
		Example: `  texparse check main.tex --constraint '>= 2022'
  texparse check *.tex --require-toolchain`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			if constraint == "" {
				constraint = env.Config.ToolchainConstraint
			}

			var results []checkResult
			failed := 0

			for _, file := range args {
				res := check(env, file, constraint, requireToolchain)
				if !res.OK {
					failed++
					env.Logger.Warn("Check failed", zap.String("file", file), zap.String("error", res.Error))
				}

				results = append(results, res)
			}

			err = env.Renderer.Render(results, func() {
				for _, res := range results {
					if res.OK {
						env.Renderer.Success(res.File)
					} else {
						env.Renderer.Error(res.File + ": " + res.Error)
					}
				}
			})

			if err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed the check", failed, len(args))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&constraint, "constraint", "", "toolchain version constraint, like '>= 2022'")
	cmd.Flags().BoolVar(&requireToolchain, "require-toolchain", false, "fail documents without toolchain directive")

	return cmd
}

func check(env *cmdutil.Env, file, constraint string, requireToolchain bool) checkResult {
	res := checkResult{File: file}

	_, tree, err := env.ParseFile(file)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	if class := tree.Macro("documentclass"); class != nil {
		res.Class, _ = class.Argument()
		if _, err := metadata.LookupStyle(res.Class); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	version, err := metadata.Toolchain(tree, env.Config.ToolchainMacro)
	switch {
	case errors.Is(err, metadata.ErrNoToolchain) && !requireToolchain:
	case err != nil:
		res.Error = err.Error()
		return res
	default:
		res.Toolchain = version.Original()
		if err := metadata.CheckToolchain(version, constraint); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	res.OK = true
	return res
}
