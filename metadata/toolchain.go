package metadata

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/eolymp/go-textree"
)

// DefaultToolchainMacro pins TeX distribution release, for example \texlive{2023}.
const DefaultToolchainMacro = "texlive"

var ErrNoToolchain = errors.New("toolchain directive is not found")

// Toolchain reads version pinned by the toolchain directive. Macro name may be given with or without the
// backslash, empty name means DefaultToolchainMacro.
func Toolchain(tree *latex.Tree, macro string) (*semver.Version, error) {
	if macro == "" {
		macro = DefaultToolchainMacro
	}

	node := tree.Macro(macro)
	if node == nil {
		return nil, ErrNoToolchain
	}

	value, ok := node.Argument()
	if !ok || value == "" {
		return nil, fmt.Errorf("line %d: toolchain directive has no version", node.Line)
	}

	version, err := semver.NewVersion(value)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid toolchain version %q: %w", node.Line, value, err)
	}

	return version, nil
}

// CheckToolchain verifies pinned version against constraint, like ">= 2022" or "~2023". Empty constraint
// accepts any version.
func CheckToolchain(version *semver.Version, constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid toolchain constraint %q: %w", constraint, err)
	}

	if ok, errs := c.Validate(version); !ok {
		if len(errs) > 0 {
			return fmt.Errorf("toolchain %s is not supported: %w", version.Original(), errs[0])
		}

		return fmt.Errorf("toolchain %s does not satisfy %q", version.Original(), constraint)
	}

	return nil
}
