package latex

import "strings"

// contentString renders envelope content without delimiters, it's safe to call with nil
func contentString(node *Node) string {
	if node == nil {
		return ""
	}

	return node.Text()
}

// commandName drops leading backslash, so \title and title refer to the same command
func commandName(name string) string {
	return strings.TrimPrefix(name, "\\")
}
