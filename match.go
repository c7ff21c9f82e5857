package latex

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Match is a regular expression match in the rendered tree, resolved back to the node containing it.
type Match struct {
	Groups []string // full match followed by submatches
	Start  int      // byte offset of the match in Tree.Latex()
	End    int
	Line   int   // line where the match starts
	Node   *Node // node which owns the first byte of the match
	Offset int   // offset of the match inside of the node's own text
}

// span is a piece of rendered text owned by a node
type span struct {
	node  *Node
	start int
	text  string
}

// Match finds the first match of the pattern. It returns nil if nothing is found.
//
// Pattern uses Go regexp syntax. PCRE style patterns with delimiters and flags, like /title/i, are accepted
// as well.
func (t *Tree) Match(pattern string) (*Match, error) {
	matches, err := t.match(pattern, 1)
	if err != nil || len(matches) == 0 {
		return nil, err
	}

	return matches[0], nil
}

// MatchAll returns all non-overlapping matches of the pattern.
func (t *Tree) MatchAll(pattern string) ([]*Match, error) {
	return t.match(pattern, -1)
}

func (t *Tree) match(pattern string, limit int) ([]*Match, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	var spans []span
	var b strings.Builder

	_ = segments(t.Root, func(n *Node, s string) error {
		if s != "" {
			spans = append(spans, span{node: n, start: b.Len(), text: s})
			b.WriteString(s)
		}

		return nil
	})

	text := b.String()

	var matches []*Match
	for _, loc := range re.FindAllStringSubmatchIndex(text, limit) {
		m := &Match{Start: loc[0], End: loc[1], Line: 1 + strings.Count(text[:loc[0]], "\n")}

		for i := 0; i < len(loc); i += 2 {
			if loc[i] < 0 {
				m.Groups = append(m.Groups, "")
				continue
			}

			m.Groups = append(m.Groups, text[loc[i]:loc[i+1]])
		}

		if len(spans) > 0 {
			// last span starting at or before the match
			index := sort.Search(len(spans), func(i int) bool { return spans[i].start > m.Start }) - 1
			if index < 0 {
				index = 0
			}

			m.Node = spans[index].node
			m.Offset = m.Start - spans[index].start
		}

		matches = append(matches, m)
	}

	return matches, nil
}

// CompilePattern compiles Go regular expression or a PCRE style pattern in delimiters (eg. /foo/i or #foo#).
// Supported flags are i, m, s and U, flag u is accepted and ignored since Go regexps are UTF-8 anyway.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(translatePattern(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	return re, nil
}

// translatePattern turns /expr/flags into (?flags)expr, anything which doesn't look like a delimited pattern is
// returned as is
func translatePattern(pattern string) string {
	if len(pattern) < 2 || !strings.ContainsRune("/#~", rune(pattern[0])) {
		return pattern
	}

	end := strings.LastIndexByte(pattern, pattern[0])
	if end == 0 {
		return pattern
	}

	var flags string
	for _, f := range pattern[end+1:] {
		switch f {
		case 'i', 'm', 's', 'U':
			flags += string(f)
		case 'u':
		default:
			return pattern
		}
	}

	expr := pattern[1:end]
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}

	return expr
}
