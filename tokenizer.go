package latex

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Tokenizer splits LaTeX source into tokens. It never drops or rewrites input: concatenating raw text of all
// tokens gives back the original source.
type Tokenizer struct {
	src  string
	pos  int
	line int
}

// Mark is a saved tokenizer position, see Tokenizer.Mark and Tokenizer.Reset.
type Mark struct {
	pos  int
	line int
}

func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src, line: 1}
}

// Line returns line number (1-based) where next token starts.
func (l *Tokenizer) Line() int {
	return l.line
}

// Offset returns byte offset where next token starts.
func (l *Tokenizer) Offset() int {
	return l.pos
}

// Mark saves current position, so reading can be rolled back with Reset.
func (l *Tokenizer) Mark() Mark {
	return Mark{pos: l.pos, line: l.line}
}

func (l *Tokenizer) Reset(m Mark) {
	l.pos = m.pos
	l.line = m.line
}

// Peek returns next token without consuming it.
func (l *Tokenizer) Peek() (any, error) {
	m := l.Mark()
	defer l.Reset(m)

	return l.Token()
}

func (l *Tokenizer) Token() (any, error) {
	char, ok := l.peek(0)
	if !ok {
		return nil, io.EOF
	}

	switch char {
	case '{':
		l.take(1)
		return ParameterStart{}, nil
	case '}':
		l.take(1)
		return ParameterEnd{}, nil
	case '[':
		l.take(1)
		return OptionalStart{}, nil
	case ']':
		l.take(1)
		return OptionalEnd{}, nil
	case '%':
		return l.readLineComment(), nil
	case '$':
		return l.readMath(), nil
	case '\\':
		return l.readBackslash(), nil
	default:
		if isWhitespace(char) {
			return l.readSpace(), nil
		}

		return l.readText(), nil
	}
}

// ReadUntil reads raw source until "s" is found, "s" itself is not consumed. If "s" is not found, it reads
// everything till the end and returns false.
func (l *Tokenizer) ReadUntil(s string) (string, bool) {
	index := strings.Index(l.src[l.pos:], s)
	if index < 0 {
		return l.take(len(l.src) - l.pos), false
	}

	return l.take(index), true
}

func (l *Tokenizer) readText() Text {
	end := l.pos
	for end < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[end:])
		if isSpecial(r) || isWhitespace(r) {
			break
		}

		end += size
	}

	return Text(l.take(end - l.pos))
}

func (l *Tokenizer) readSpace() Space {
	end := l.pos
	for end < len(l.src) && isWhitespace(rune(l.src[end])) {
		end++
	}

	return Space(l.take(end - l.pos))
}

// readLineComment reads one line comment starting with %.
//
// When LATEX encounters a % character while processing an input file, it ignores the rest of the present line
// and the line break, so the line break is kept as part of the comment.
func (l *Tokenizer) readLineComment() Comment {
	index := strings.IndexByte(l.src[l.pos:], '\n')
	if index < 0 {
		return Comment(l.take(len(l.src) - l.pos))
	}

	return Comment(l.take(index + 1))
}

func (l *Tokenizer) readMath() MathShift {
	// math block is described with two $$ in the beginning and in the end
	if next, ok := l.peek(1); ok && next == '$' {
		return MathShift(l.take(2))
	}

	return MathShift(l.take(1))
}

func (l *Tokenizer) readBackslash() any {
	r, ok := l.peek(1)
	if !ok {
		return Text(l.take(1))
	}

	// a letter means it's a named command \xyz
	if isLetter(r) {
		return l.readCommand()
	}

	// one symbol command, \\ may be followed by star
	_, width := utf8.DecodeRuneInString(l.src[l.pos+1:])
	size := 1 + width
	if r == '\\' {
		if star, ok := l.peek(2); ok && star == '*' {
			size++
		}
	}

	return Command(l.take(size))
}

func (l *Tokenizer) readCommand() any {
	end := l.pos + 1
	for end < len(l.src) && isLetter(rune(l.src[end])) {
		end++
	}

	// command names may include * in the end (except for begin and end)
	name := l.src[l.pos:end]
	if end < len(l.src) && l.src[end] == '*' && name != "\\begin" && name != "\\end" {
		end++
	}

	command := l.take(end - l.pos)
	if command == "\\verb" || command == "\\verb*" {
		if v, ok := l.readVerbatim(command); ok {
			return v
		}
	}

	return Command(command)
}

// readVerbatim reads \verb<d>...<d> content. Closing delimiter has to be found on the same line, otherwise
// \verb is left as an ordinary command.
func (l *Tokenizer) readVerbatim(command string) (Verbatim, bool) {
	delimiter, ok := l.peek(0)
	if !ok || isWhitespace(delimiter) || isLetter(delimiter) || delimiter == '*' || delimiter == utf8.RuneError {
		return Verbatim{}, false
	}

	_, size := utf8.DecodeRuneInString(l.src[l.pos:])
	rest := l.src[l.pos+size:]

	index := strings.IndexRune(rest, delimiter)
	if index < 0 {
		return Verbatim{}, false
	}

	if newline := strings.IndexByte(rest[:index], '\n'); newline >= 0 {
		return Verbatim{}, false
	}

	l.take(size)
	data := l.take(index)
	l.take(size)

	return Verbatim{Command: command, Delimiter: string(delimiter), Data: data}, true
}

// peek returns rune at "n" runes after current position
func (l *Tokenizer) peek(n int) (rune, bool) {
	pos := l.pos
	for {
		if pos >= len(l.src) {
			return 0, false
		}

		r, size := utf8.DecodeRuneInString(l.src[pos:])
		if n == 0 {
			return r, true
		}

		pos += size
		n--
	}
}

// take consumes "n" bytes and keeps line counter up to date
func (l *Tokenizer) take(n int) string {
	s := l.src[l.pos : l.pos+n]
	l.pos += n
	l.line += strings.Count(s, "\n")

	return s
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isSpecial returns true if a symbol has a special meaning and should interrupt text reading
func isSpecial(r rune) bool {
	switch r {
	case '\\', '{', '}', '[', ']', '%', '$':
		return true
	default:
		return false
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
