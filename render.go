package latex

import (
	"fmt"
	"io"
)

// Render writes exact LaTeX source of the node. For a freshly parsed tree, rendering the root gives back the
// input byte for byte.
func Render(w io.Writer, node *Node) error {
	return segments(node, func(_ *Node, s string) error {
		_, err := fmt.Fprint(w, s)
		return err
	})
}

// segments walks the node in source order and calls "fn" for every piece of rendered text with the node owning
// it. Text-like nodes own their literal, commands own their name, envelopes own nothing (their delimiters are
// separate nodes).
func segments(node *Node, fn func(*Node, string) error) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case TextKind, WhitespaceKind, CommentKind:
		return fn(node, node.Data)
	case VerbatimKind:
		return fn(node, verbCommand(node)+node.Delimiter+node.Data+node.Delimiter)
	case CommandKind:
		if err := fn(node, node.Data); err != nil {
			return err
		}

		return segmentsChildren(node, fn)
	default:
		if err := segments(node.Open, fn); err != nil {
			return err
		}

		if err := segmentsChildren(node, fn); err != nil {
			return err
		}

		return segments(node.Close, fn)
	}
}

func segmentsChildren(node *Node, fn func(*Node, string) error) error {
	for _, child := range node.Children {
		if err := segments(child, fn); err != nil {
			return err
		}
	}

	return nil
}

func verbCommand(node *Node) string {
	if node.Star {
		return "\\verb*"
	}

	return "\\verb"
}
