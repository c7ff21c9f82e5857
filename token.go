package latex

type Text string
type Space string
type Comment string
type Command string
type MathShift string

type Verbatim struct {
	Command   string
	Delimiter string
	Data      string
}

type ParameterStart struct {
}

type ParameterEnd struct {
}

type OptionalStart struct {
}

type OptionalEnd struct {
}

// Raw returns exact source text of a token.
func Raw(t any) string {
	switch token := t.(type) {
	case Text:
		return string(token)
	case Space:
		return string(token)
	case Comment:
		return string(token)
	case Command:
		return string(token)
	case MathShift:
		return string(token)
	case Verbatim:
		return token.Command + token.Delimiter + token.Data + token.Delimiter
	case ParameterStart:
		return "{"
	case ParameterEnd:
		return "}"
	case OptionalStart:
		return "["
	case OptionalEnd:
		return "]"
	default:
		return ""
	}
}
