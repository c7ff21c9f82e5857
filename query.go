package latex

import (
	"strings"
)

// Name returns command name without the backslash, environment name as written in \begin{...}, or verbatim
// command name (verb or verb*). Other nodes have no name.
func (n *Node) Name() string {
	switch n.Kind {
	case CommandKind:
		return commandName(n.Data)
	case VerbatimKind:
		return commandName(verbCommand(n))
	case EnvironmentKind:
		return n.Data
	default:
		return ""
	}
}

// Text returns rendered content without delimiters: envelope content, command arguments or literal data.
func (n *Node) Text() string {
	switch n.Kind {
	case TextKind, WhitespaceKind, CommentKind, VerbatimKind:
		return n.Data
	default:
		var b strings.Builder
		for _, child := range n.Children {
			_ = Render(&b, child)
		}

		return b.String()
	}
}

// Snippet returns LaTeX source of this node alone, including its arguments.
func (n *Node) Snippet() string {
	return String(n)
}

// ArgumentNodes returns arguments of a command or environment in source order. For environments these are
// arguments which follow the name, for example {cc} in \begin{tabular}{cc}.
func (n *Node) ArgumentNodes() (args []*Node) {
	var owner *Node
	skip := 0

	switch n.Kind {
	case CommandKind:
		owner = n
	case EnvironmentKind:
		owner, skip = n.Open, 1
	}

	if owner == nil {
		return nil
	}

	for _, child := range owner.Children {
		if child.Kind != ArgumentKind {
			continue
		}

		if skip > 0 {
			skip--
			continue
		}

		args = append(args, child)
	}

	return
}

// Argument returns trimmed text of the first required argument.
func (n *Node) Argument() (string, bool) {
	for _, arg := range n.ArgumentNodes() {
		if !arg.Optional {
			return strings.TrimSpace(arg.Text()), true
		}
	}

	return "", false
}

// Arguments returns text of all arguments (optional and required) in source order.
func (n *Node) Arguments() []string {
	return argumentText(n.ArgumentNodes(), func(*Node) bool { return true })
}

// RequiredArguments returns text of arguments in curly braces.
func (n *Node) RequiredArguments() []string {
	return argumentText(n.ArgumentNodes(), func(arg *Node) bool { return !arg.Optional })
}

// Options returns text of arguments in square brackets.
func (n *Node) Options() []string {
	return argumentText(n.ArgumentNodes(), func(arg *Node) bool { return arg.Optional })
}

// OptionMap parses all options as key=value lists, later options override earlier ones.
func (n *Node) OptionMap() map[string]string {
	options := map[string]string{}
	for _, raw := range n.Options() {
		for k, v := range KeyValue(raw) {
			options[k] = v
		}
	}

	return options
}

// Type returns stable classification tag of the node.
func (n *Node) Type() string {
	return n.Kind.String()
}

// Declaration returns node signature, for example \newcommand{}[]{} or \begin{tabular}{}.
func (n *Node) Declaration() string {
	switch n.Kind {
	case CommandKind:
		return n.Data + signature(n.ArgumentNodes())
	case EnvironmentKind:
		return "\\begin{" + n.Data + "}" + signature(n.ArgumentNodes())
	case VerbatimKind:
		return verbCommand(n) + n.Delimiter + "..." + n.Delimiter
	case MathKind:
		return n.Delimiter + "..." + n.Delimiter
	case GroupKind:
		return "{...}"
	case UnclosedGroupKind:
		return "{..."
	case ArgumentKind:
		if n.Optional {
			return "[...]"
		}

		return "{...}"
	default:
		return n.Type()
	}
}

func signature(args []*Node) string {
	var b strings.Builder
	for _, arg := range args {
		if arg.Optional {
			b.WriteString("[]")
		} else {
			b.WriteString("{}")
		}
	}

	return b.String()
}

func argumentText(args []*Node, keep func(*Node) bool) (values []string) {
	for _, arg := range args {
		if keep(arg) {
			values = append(values, arg.Text())
		}
	}

	return
}
