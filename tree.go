package latex

import "strings"

// Tree is a parsed document: root node and the source it was built from.
//
// Tree may be modified through its nodes. Source is not updated on modification, use Latex to get the
// current text.
type Tree struct {
	Root   *Node
	source string
}

// Source returns the text tree was parsed from.
func (t *Tree) Source() string {
	return t.source
}

// Macro returns the first command with the given name in document order, or nil. Name may be given with or
// without the backslash. Starred forms are separate commands: \section* is found by "section*", not "section".
func (t *Tree) Macro(name string) *Node {
	var found *Node

	name = commandName(name)
	Walk(t.Root, func(n *Node) bool {
		if found != nil {
			return false
		}

		if n.Kind == CommandKind && n.Name() == name {
			found = n
			return false
		}

		return true
	})

	return found
}

// Macros returns all commands with the given name in document order.
func (t *Tree) Macros(name string) (nodes []*Node) {
	name = commandName(name)
	Walk(t.Root, func(n *Node) bool {
		if n.Kind == CommandKind && n.Name() == name {
			nodes = append(nodes, n)
		}

		return true
	})

	return
}

// Environments returns all environments with the given name in document order.
func (t *Tree) Environments(name string) (nodes []*Node) {
	Walk(t.Root, func(n *Node) bool {
		if n.Kind == EnvironmentKind && n.Data == name {
			nodes = append(nodes, n)
		}

		return true
	})

	return
}

// Latex renders the tree back to LaTeX. Unless the tree was modified, it's exactly the parsed source.
func (t *Tree) Latex() string {
	return String(t.Root)
}

// String is the same as Latex.
func (t *Tree) String() string {
	return t.Latex()
}

// TreeString returns debug dump of the tree, one node per line.
func (t *Tree) TreeString() string {
	var b strings.Builder
	_ = Dump(&b, t.Root)

	return b.String()
}

// Walk visits node and its descendants in document order (depth-first, pre-order), including envelope
// delimiters. Descendants of a node are skipped if "fn" returns false for it.
func Walk(node *Node, fn func(*Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	Walk(node.Open, fn)

	for _, child := range node.Children {
		Walk(child, fn)
	}

	Walk(node.Close, fn)
}
