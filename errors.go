package latex

import "fmt"

// ParseError is returned when \end does not close the innermost open environment. It's the only condition
// parser refuses to recover from, any other malformed input ends up as a partial tree.
type ParseError struct {
	Line     int    // line of the \end command
	Name     string // environment name given to \end
	Expected string // name of the innermost open environment, empty if there is none
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("line %d: \\end{%s} does not match \\begin{%s}", e.Line, e.Name, e.Expected)
	}

	return fmt.Sprintf("line %d: \\end{%s} without matching \\begin", e.Line, e.Name)
}
