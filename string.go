package latex

import "strings"

// String returns exact LaTeX source of the node, including delimiters and command arguments.
func String(node *Node) string {
	var b strings.Builder
	_ = Render(&b, node)

	return b.String()
}
