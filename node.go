package latex

import "strings"

type Kind int

const (
	TextKind Kind = iota
	WhitespaceKind
	CommentKind
	VerbatimKind
	CommandKind
	EnvironmentKind
	GroupKind
	UnclosedGroupKind
	ArgumentKind
	MathKind
)

var kindNames = map[Kind]string{
	TextKind:          "text",
	WhitespaceKind:    "whitespace",
	CommentKind:       "comment",
	VerbatimKind:      "verbatim",
	CommandKind:       "command",
	EnvironmentKind:   "environment",
	GroupKind:         "group",
	UnclosedGroupKind: "unclosed_group",
	ArgumentKind:      "argument",
	MathKind:          "math",
}

// String returns kind name as used in tree dumps and structured output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Node is a single element of the parse tree.
//
// Fields are used depending on Kind:
//   - Text, Whitespace and Comment keep their literal source in Data.
//   - Verbatim keeps the content in Data, the delimiter in Delimiter and Star is set for \verb*.
//   - Command keeps the control sequence, including the backslash, in Data and its arguments in Children.
//   - Environment keeps its name in Data.
//   - Environment, Group, UnclosedGroup, Argument and Math are envelopes: Children hold the content,
//     Open and Close hold the delimiters. Close is nil when the envelope never closed. Math keeps $ or $$
//     in Delimiter.
type Node struct {
	Kind      Kind
	Line      int
	Data      string
	Delimiter string
	Optional  bool
	Star      bool
	Open      *Node
	Close     *Node
	Children  []*Node

	parent *Node
}

// Parent returns node which holds this one either as a child or as a delimiter.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsEnvelope reports whether node content is bounded by delimiters.
func (n *Node) IsEnvelope() bool {
	switch n.Kind {
	case EnvironmentKind, GroupKind, UnclosedGroupKind, ArgumentKind, MathKind:
		return true
	default:
		return false
	}
}

// IsClosed reports whether envelope has found its closing delimiter.
func (n *Node) IsClosed() bool {
	return n.Close != nil
}

// IsWhitespace is true for whitespace nodes and for text nodes which trim to nothing.
func (n *Node) IsWhitespace() bool {
	switch n.Kind {
	case WhitespaceKind:
		return true
	case TextKind:
		return strings.TrimSpace(n.Data) == ""
	default:
		return false
	}
}

// Child returns child at the given index, negative index counts from the end.
func (n *Node) Child(index int) *Node {
	if index < 0 {
		index += len(n.Children)
	}

	if index < 0 || index >= len(n.Children) {
		return nil
	}

	return n.Children[index]
}

// AddChild appends node to the content.
func (n *Node) AddChild(child *Node) {
	n.InsertChild(len(n.Children), child)
}

// AddChildren appends nodes to the content, keeping their order.
func (n *Node) AddChildren(children ...*Node) {
	for _, child := range children {
		n.AddChild(child)
	}
}

// InsertChild puts node at the given position, index is clamped to the content range.
func (n *Node) InsertChild(index int, child *Node) {
	if child == nil {
		return
	}

	// moving within the same parent shifts positions after the old one
	if child.parent == n {
		if old := n.IndexOf(child); old >= 0 && old < index {
			index--
		}
	}

	child.detach()
	child.parent = n

	if index < 0 {
		index = 0
	}

	if index > len(n.Children) {
		index = len(n.Children)
	}

	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
}

// RemoveChild detaches and returns child at the given index, negative index counts from the end.
func (n *Node) RemoveChild(index int) *Node {
	if index < 0 {
		index += len(n.Children)
	}

	if index < 0 || index >= len(n.Children) {
		return nil
	}

	child := n.Children[index]
	n.Children = append(n.Children[:index], n.Children[index+1:]...)
	child.parent = nil

	return child
}

// ReplaceChild puts node in place of the child at the given index and returns the old child. Replacing a child
// with itself changes nothing and returns nil.
func (n *Node) ReplaceChild(index int, child *Node) *Node {
	if index < 0 {
		index += len(n.Children)
	}

	if child == nil || index < 0 || index >= len(n.Children) {
		return nil
	}

	old := n.Children[index]
	if old == child {
		return nil
	}

	child.detach()

	// child may have been taken from before the slot
	index = n.IndexOf(old)
	old.parent = nil

	child.parent = n
	n.Children[index] = child

	return old
}

// IndexOf returns position of the child in the content or -1.
func (n *Node) IndexOf(child *Node) int {
	for index, c := range n.Children {
		if c == child {
			return index
		}
	}

	return -1
}

// SetOpen replaces opening delimiter and returns the previous one.
func (n *Node) SetOpen(open *Node) *Node {
	old := n.Open
	if old != nil {
		old.parent = nil
	}

	if open != nil {
		open.detach()
		open.parent = n
	}

	n.Open = open
	return old
}

// SetClose replaces closing delimiter and returns the previous one.
func (n *Node) SetClose(close *Node) *Node {
	old := n.Close
	if old != nil {
		old.parent = nil
	}

	if close != nil {
		close.detach()
		close.parent = n
	}

	n.Close = close
	return old
}

// detach removes node from its current parent, so it's never owned twice
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}

	switch {
	case p.Open == n:
		p.Open = nil
	case p.Close == n:
		p.Close = nil
	default:
		if index := p.IndexOf(n); index >= 0 {
			p.Children = append(p.Children[:index], p.Children[index+1:]...)
		}
	}

	n.parent = nil
}
