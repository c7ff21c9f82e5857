package latex

import (
	"fmt"
	"io"
	"strings"
)

// rawEnvironments keep their body as is, without looking for commands inside
var rawEnvironments = map[string]bool{
	"verbatim":   true,
	"verbatim*":  true,
	"lstlisting": true,
	"minted":     true,
	"comment":    true,
}

// state tells how reading of envelope content has stopped
type state int

const (
	eof    state = iota // input is over, envelope is left open
	closed              // closing delimiter was found
	ending              // \end was found which belongs to one of the enclosing environments
)

type Parser struct {
	tokens *Tokenizer
	source string
	root   *Node

	// pending is \end command waiting to be matched by an enclosing environment
	pending     *Node
	pendingName string
}

// Parse builds tree for the given LaTeX source.
func Parse(source string) (*Tree, error) {
	return NewParser(source).Parse()
}

// ParseReader reads all input and builds tree for it.
func ParseReader(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}

	return Parse(string(data))
}

func NewParser(source string) *Parser {
	return &Parser{tokens: NewTokenizer(source), source: source}
}

func (p *Parser) Parse() (*Tree, error) {
	p.root = &Node{Kind: GroupKind, Line: 1}

	if _, err := p.content(p.root); err != nil {
		return nil, err
	}

	return &Tree{Root: p.root, source: p.source}, nil
}

// content reads nodes into envelope "n" until its closing delimiter, end of input or \end of an enclosing
// environment.
func (p *Parser) content(n *Node) (state, error) {
	for {
		mark := p.tokens.Mark()

		t, err := p.tokens.Token()
		if err == io.EOF {
			return eof, nil
		}

		if err != nil {
			return eof, err
		}

		switch token := t.(type) {
		case Text:
			p.text(n, string(token), mark.line)
		case Space:
			n.AddChild(&Node{Kind: WhitespaceKind, Line: mark.line, Data: string(token)})
		case Comment:
			n.AddChild(&Node{Kind: CommentKind, Line: mark.line, Data: string(token)})
		case Verbatim:
			n.AddChild(&Node{Kind: VerbatimKind, Line: mark.line, Star: token.Command == "\\verb*", Delimiter: token.Delimiter, Data: token.Data})
		case OptionalStart:
			p.text(n, "[", mark.line)
		case OptionalEnd:
			if n.Kind == ArgumentKind && n.Optional {
				n.SetClose(delimiter("]", mark.line))
				return closed, nil
			}

			p.text(n, "]", mark.line)
		case ParameterStart:
			group := &Node{Kind: GroupKind, Line: mark.line}
			group.SetOpen(delimiter("{", mark.line))
			n.AddChild(group)

			st, err := p.content(group)
			if err != nil {
				return eof, err
			}

			if st != closed {
				group.Kind = UnclosedGroupKind
			}

			if st == ending {
				return p.end(n)
			}
		case ParameterEnd:
			// stray closing brace is kept as text
			if (n.Kind == GroupKind && n != p.root) || (n.Kind == ArgumentKind && !n.Optional) {
				n.SetClose(delimiter("}", mark.line))
				return closed, nil
			}

			p.text(n, "}", mark.line)
		case MathShift:
			st, err := p.math(n, string(token), mark)
			if err != nil || st != eof {
				return st, err
			}
		case Command:
			st, err := p.command(n, string(token), mark.line)
			if err != nil || st != eof {
				return st, err
			}
		default:
			return eof, fmt.Errorf("unexpected token %T", t)
		}
	}
}

// math opens or closes math span. It returns eof when reading of "n" should continue.
func (p *Parser) math(n *Node, shift string, mark Mark) (state, error) {
	if n.Kind == MathKind {
		switch {
		case n.Delimiter == shift:
			n.SetClose(delimiter(shift, mark.line))
			return closed, nil
		case n.Delimiter == "$":
			// $a$$b$ is two inline formulas, close with the first $ and read the second one again
			n.SetClose(delimiter("$", mark.line))
			p.tokens.Reset(Mark{pos: mark.pos + 1, line: mark.line})
			return closed, nil
		default:
			// single $ inside of $$...$$
			p.text(n, shift, mark.line)
			return eof, nil
		}
	}

	math := &Node{Kind: MathKind, Line: mark.line, Delimiter: shift}
	math.SetOpen(delimiter(shift, mark.line))
	n.AddChild(math)

	st, err := p.content(math)
	if err != nil {
		return eof, err
	}

	if st == ending {
		return p.end(n)
	}

	return eof, nil
}

// command reads a command and its arguments. It returns eof when reading of "n" should continue.
func (p *Parser) command(n *Node, name string, line int) (state, error) {
	switch name {
	case "\\begin":
		pending, err := p.environment(n, line)
		if err != nil {
			return eof, err
		}

		if pending {
			return p.end(n)
		}

		return eof, nil
	case "\\end":
		end := &Node{Kind: CommandKind, Line: line, Data: name}

		pending, err := p.arguments(end, 1, true, true)
		if err != nil {
			return eof, err
		}

		arg := end.Child(-1)
		if pending || arg == nil || arg.Kind != ArgumentKind || !arg.IsClosed() {
			return eof, &ParseError{Line: line, Name: strings.TrimSpace(contentString(arg))}
		}

		p.pending = end
		p.pendingName = strings.TrimSpace(arg.Text())

		return p.end(n)
	default:
		cmd := &Node{Kind: CommandKind, Line: line, Data: name}
		n.AddChild(cmd)

		pending, err := p.arguments(cmd, 0, true, false)
		if err != nil {
			return eof, err
		}

		if pending {
			return p.end(n)
		}

		return eof, nil
	}
}

// environment reads \begin{name} and everything up to the matching \end{name}. It returns true if \end of an
// enclosing environment was found while reading environment name.
func (p *Parser) environment(parent *Node, line int) (bool, error) {
	begin := &Node{Kind: CommandKind, Line: line, Data: "\\begin"}

	pending, err := p.arguments(begin, 1, true, true)
	if err != nil {
		return false, err
	}

	arg := begin.Child(-1)
	if pending || arg == nil || arg.Kind != ArgumentKind || !arg.IsClosed() {
		// without a name \begin is an ordinary command
		parent.AddChild(begin)
		return pending, nil
	}

	env := &Node{Kind: EnvironmentKind, Line: line, Data: strings.TrimSpace(arg.Text())}
	env.SetOpen(begin)
	parent.AddChild(env)

	// environment arguments, like \begin{tabular}{cc}, have to follow the name immediately
	pending, err = p.arguments(begin, 0, false, false)
	if err != nil {
		return false, err
	}

	if pending {
		if _, err := p.end(env); err != nil {
			return false, err
		}

		return false, nil
	}

	if rawEnvironments[env.Data] {
		bodyLine := p.tokens.Line()
		if body, _ := p.tokens.ReadUntil("\\end{" + env.Data + "}"); body != "" {
			env.AddChild(&Node{Kind: TextKind, Line: bodyLine, Data: body})
		}
	}

	if _, err := p.content(env); err != nil {
		return false, err
	}

	return false, nil
}

// arguments attaches up to "limit" (0 means no limit) arguments to the command. Each argument may be preceded
// by whitespace if "spaced" is set, unless whitespace contains an empty line. It returns true if \end of an
// enclosing environment was found inside of an argument.
func (p *Parser) arguments(cmd *Node, limit int, spaced, requiredOnly bool) (bool, error) {
	for count := 0; limit == 0 || count < limit; count++ {
		mark := p.tokens.Mark()

		t, err := p.tokens.Token()
		if err != nil && err != io.EOF {
			return false, err
		}

		var space *Node
		if s, ok := t.(Space); ok && spaced && strings.Count(string(s), "\n") < 2 {
			space = &Node{Kind: WhitespaceKind, Line: mark.line, Data: string(s)}

			t, err = p.tokens.Token()
			if err != nil && err != io.EOF {
				return false, err
			}
		}

		line := mark.line
		if space != nil {
			line += strings.Count(space.Data, "\n")
		}

		var arg *Node
		switch t.(type) {
		case ParameterStart:
			arg = &Node{Kind: ArgumentKind, Line: line}
			arg.SetOpen(delimiter("{", line))
		case OptionalStart:
			if !requiredOnly {
				arg = &Node{Kind: ArgumentKind, Line: line, Optional: true}
				arg.SetOpen(delimiter("[", line))
			}
		}

		if arg == nil {
			p.tokens.Reset(mark)
			return false, nil
		}

		if space != nil {
			cmd.AddChild(space)
		}

		cmd.AddChild(arg)

		st, err := p.content(arg)
		if err != nil {
			return false, err
		}

		switch st {
		case ending:
			return true, nil
		case eof:
			return false, nil
		}
	}

	return false, nil
}

// end handles pending \end in the context of "n": it closes matching environment, fails for the other one or
// passes \end up to the enclosing node.
func (p *Parser) end(n *Node) (state, error) {
	switch {
	case n.Kind == EnvironmentKind && n.Data == p.pendingName:
		n.SetClose(p.pending)
		p.pending, p.pendingName = nil, ""
		return closed, nil
	case n.Kind == EnvironmentKind:
		return eof, &ParseError{Line: p.pending.Line, Name: p.pendingName, Expected: n.Data}
	case n == p.root:
		return eof, &ParseError{Line: p.pending.Line, Name: p.pendingName}
	default:
		return ending, nil
	}
}

// text appends text to the content, consequent text nodes are merged together
func (p *Parser) text(n *Node, data string, line int) {
	if last := n.Child(-1); last != nil && last.Kind == TextKind {
		last.Data += data
		return
	}

	n.AddChild(&Node{Kind: TextKind, Line: line, Data: data})
}

func delimiter(data string, line int) *Node {
	return &Node{Kind: TextKind, Line: line, Data: data}
}
