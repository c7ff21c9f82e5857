package latex_test

import (
	"bytes"
	"testing"

	"github.com/eolymp/go-textree"
)

func TestRender(t *testing.T) {
	root := func(children ...*latex.Node) *latex.Node {
		n := &latex.Node{Kind: latex.GroupKind}
		n.AddChildren(children...)
		return n
	}

	text := func(t string) *latex.Node {
		return &latex.Node{Kind: latex.TextKind, Data: t}
	}

	space := func(t string) *latex.Node {
		return &latex.Node{Kind: latex.WhitespaceKind, Data: t}
	}

	envelope := func(kind latex.Kind, opening, closing string, children ...*latex.Node) *latex.Node {
		n := &latex.Node{Kind: kind}
		n.SetOpen(text(opening))
		if closing != "" {
			n.SetClose(text(closing))
		}

		n.AddChildren(children...)
		return n
	}

	arg := func(children ...*latex.Node) *latex.Node {
		return envelope(latex.ArgumentKind, "{", "}", children...)
	}

	command := func(name string, children ...*latex.Node) *latex.Node {
		n := &latex.Node{Kind: latex.CommandKind, Data: name}
		n.AddChildren(children...)
		return n
	}

	tt := []struct {
		name     string
		render   string
		document *latex.Node
	}{
		{
			name:     "plain text",
			render:   "one two",
			document: root(text("one"), space(" "), text("two")),
		},
		{
			name:     "command with arguments",
			render:   "\\textbf{foo bar}[x]",
			document: root(command("\\textbf", arg(text("foo bar")), &latex.Node{Kind: latex.ArgumentKind, Optional: true, Open: text("["), Close: text("]"), Children: []*latex.Node{text("x")}})),
		},
		{
			name:     "unclosed group",
			render:   "{abc",
			document: root(envelope(latex.UnclosedGroupKind, "{", "", text("abc"))),
		},
		{
			name:     "math",
			render:   "$$x$$",
			document: root(envelope(latex.MathKind, "$$", "$$", text("x"))),
		},
		{
			name:     "verbatim",
			render:   "\\verb*!a b!",
			document: root(&latex.Node{Kind: latex.VerbatimKind, Star: true, Delimiter: "!", Data: "a b"}),
		},
		{
			name:   "environment",
			render: "\\begin{quote}\nhi\n\\end{quote}",
			document: root(&latex.Node{
				Kind:     latex.EnvironmentKind,
				Data:     "quote",
				Open:     command("\\begin", arg(text("quote"))),
				Close:    command("\\end", arg(text("quote"))),
				Children: []*latex.Node{space("\n"), text("hi"), space("\n")},
			}),
		},
		{
			name:     "comment",
			render:   "a% note\nb",
			document: root(text("a"), &latex.Node{Kind: latex.CommentKind, Data: "% note\n"}, text("b")),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b := bytes.NewBuffer(nil)
			if err := latex.Render(b, tc.document); err != nil {
				t.Fatal(err)
			}

			if b.String() != tc.render {
				t.Errorf("Document is rendered incorrectly:\nWANT: %q\nGOT:  %q", tc.render, b.String())
			}
		})
	}
}

func TestRenderAfterModification(t *testing.T) {
	tree, err := latex.Parse("\\title{Old} text")
	if err != nil {
		t.Fatal(err)
	}

	title := tree.Macro("title")
	arg := title.ArgumentNodes()[0]
	arg.ReplaceChild(0, &latex.Node{Kind: latex.TextKind, Data: "New"})

	tree.Root.AddChild(&latex.Node{Kind: latex.CommentKind, Data: "%end"})

	if got, want := tree.Latex(), "\\title{New} text%end"; got != want {
		t.Errorf("Modified tree is rendered incorrectly:\nWANT: %q\nGOT:  %q", want, got)
	}

	if tree.Source() != "\\title{Old} text" {
		t.Errorf("Source must not change on modification, got %q", tree.Source())
	}

	// closing an unclosed group makes it render the brace
	tree, err = latex.Parse("{abc")
	if err != nil {
		t.Fatal(err)
	}

	group := tree.Root.Child(0)
	group.SetClose(&latex.Node{Kind: latex.TextKind, Data: "}"})
	group.Kind = latex.GroupKind

	if got := tree.Latex(); got != "{abc}" {
		t.Errorf("Closed group is rendered incorrectly: %q", got)
	}
}

func TestSnippet(t *testing.T) {
	tree, err := latex.Parse("a \\cmd[x] {y} b")
	if err != nil {
		t.Fatal(err)
	}

	if got := tree.Macro("cmd").Snippet(); got != "\\cmd[x] {y}" {
		t.Errorf("Unexpected snippet: %q", got)
	}

	if got := latex.String(nil); got != "" {
		t.Errorf("nil node must render to an empty string, got %q", got)
	}
}
