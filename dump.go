package latex

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const previewLength = 40

// Dump writes one line per node: indentation by depth, kind, line number and a short quoted preview.
// Delimiters of envelopes are printed as "open" and "close" lines around the content.
func Dump(w io.Writer, node *Node) error {
	return dump(w, node, 0, "")
}

func dump(w io.Writer, node *Node, depth int, role string) error {
	if node == nil {
		return nil
	}

	line := strings.Repeat("  ", depth) + role + node.Kind.String() + " line " + strconv.Itoa(node.Line)
	if p, ok := preview(node); ok {
		line += " " + p
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	if err := dump(w, node.Open, depth+1, "open "); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := dump(w, child, depth+1, ""); err != nil {
			return err
		}
	}

	return dump(w, node.Close, depth+1, "close ")
}

func preview(node *Node) (string, bool) {
	var text string
	switch node.Kind {
	case TextKind, WhitespaceKind, CommentKind, CommandKind, EnvironmentKind:
		text = node.Data
	case VerbatimKind:
		text = verbCommand(node) + node.Delimiter + node.Data + node.Delimiter
	case MathKind:
		text = node.Delimiter
	default:
		return "", false
	}

	if utf8.RuneCountInString(text) > previewLength {
		runes := []rune(text)
		text = string(runes[:previewLength-3]) + "..."
	}

	return strconv.Quote(text), true
}
