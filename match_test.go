package latex_test

import (
	"testing"

	"github.com/eolymp/go-textree"
	"github.com/google/go-cmp/cmp"
)

func TestMatch(t *testing.T) {
	tree, err := latex.Parse("\\title{foo bar baz}")
	if err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		name    string
		pattern string
		groups  []string
		start   int
		kind    latex.Kind
		data    string
		offset  int
	}{
		{name: "text inside of argument", pattern: "baz", groups: []string{"baz"}, start: 15, kind: latex.TextKind, data: "baz", offset: 0},
		{name: "command name", pattern: "/TITLE/i", groups: []string{"title"}, start: 1, kind: latex.CommandKind, data: "\\title", offset: 1},
		{name: "submatches", pattern: `(\w+) (\w+)`, groups: []string{"foo bar", "foo", "bar"}, start: 7, kind: latex.TextKind, data: "foo", offset: 0},
		{name: "delimiter", pattern: "#\\}$#", groups: []string{"}"}, start: 18, kind: latex.TextKind, data: "}", offset: 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tree.Match(tc.pattern)
			if err != nil {
				t.Fatal(err)
			}

			if m == nil {
				t.Fatal("Pattern must match")
			}

			if diff := cmp.Diff(tc.groups, m.Groups); diff != "" {
				t.Errorf("Groups do not match (-want +got):\n%s", diff)
			}

			if m.Start != tc.start || m.End != tc.start+len(tc.groups[0]) {
				t.Errorf("Unexpected position: %d-%d", m.Start, m.End)
			}

			if m.Node == nil || m.Node.Kind != tc.kind || m.Node.Data != tc.data {
				t.Fatalf("Match resolved to a wrong node: %#v", m.Node)
			}

			if m.Offset != tc.offset {
				t.Errorf("Unexpected offset in node: want %d, got %d", tc.offset, m.Offset)
			}
		})
	}
}

func TestMatchNothing(t *testing.T) {
	tree, err := latex.Parse("\\title{foo}")
	if err != nil {
		t.Fatal(err)
	}

	m, err := tree.Match("missing")
	if err != nil || m != nil {
		t.Errorf("Match must return nil without error, got %v, %v", m, err)
	}

	if _, err := tree.Match("(unclosed"); err == nil {
		t.Errorf("Invalid pattern must fail")
	}
}

func TestMatchAll(t *testing.T) {
	tree, err := latex.Parse("a\nba")
	if err != nil {
		t.Fatal(err)
	}

	matches, err := tree.MatchAll("a")
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}

	if matches[0].Line != 1 || matches[1].Line != 2 {
		t.Errorf("Unexpected lines: %d, %d", matches[0].Line, matches[1].Line)
	}

	if matches[1].Node.Data != "ba" || matches[1].Offset != 1 {
		t.Errorf("Second match resolved to %q at %d", matches[1].Node.Data, matches[1].Offset)
	}
}

func TestCompilePattern(t *testing.T) {
	tt := []struct {
		pattern string
		input   string
		match   bool
	}{
		{pattern: "/usr/bin", input: "/usr/bin", match: true},
		{pattern: "/a.c/s", input: "a\nc", match: true},
		{pattern: "/a.c/", input: "a\nc", match: false},
		{pattern: "~^b$~m", input: "a\nb", match: true},
		{pattern: "/ABC/iu", input: "abc", match: true},
		{pattern: "plain", input: "some plain text", match: true},
	}

	for _, tc := range tt {
		t.Run(tc.pattern, func(t *testing.T) {
			re, err := latex.CompilePattern(tc.pattern)
			if err != nil {
				t.Fatal(err)
			}

			if got := re.MatchString(tc.input); got != tc.match {
				t.Errorf("Pattern %q on %q: want %v, got %v", tc.pattern, tc.input, tc.match, got)
			}
		})
	}
}

func TestMatchResolvesToArgumentContent(t *testing.T) {
	tree, err := latex.Parse("foo \\bar{baz}")
	if err != nil {
		t.Fatal(err)
	}

	m, err := tree.Match("baz")
	if err != nil || m == nil {
		t.Fatalf("Pattern must match: %v", err)
	}

	if m.Node.Data != "baz" || m.Node.Parent() == nil || m.Node.Parent().Kind != latex.ArgumentKind {
		t.Errorf("Match must resolve to the argument content, got %s %q", m.Node.Type(), m.Node.Data)
	}
}
