package latex

import (
	"regexp"
	"strings"
)

var measure = regexp.MustCompile("^(-?[0-9]*(?:\\.[0-9]+)?)(%|\\\\?[a-z ]*)$")

// KeyValue parses key-value parameters in this format: key=value, key=value, for example as used in
// \includegraphics or \documentclass options. Keys without a value (like 12pt) are mapped to an empty string.
// Values may be wrapped in braces or quotes to protect commas: title={One, Two}, name="a, b".
func KeyValue(raw string) map[string]string {
	kv := map[string]string{}

	for _, part := range splitList(raw) {
		n := strings.SplitN(part, "=", 2)

		key := strings.ToLower(strings.TrimSpace(n[0]))
		if key == "" {
			continue
		}

		if len(n) == 1 {
			kv[key] = ""
			continue
		}

		kv[key] = unquote(strings.TrimSpace(n[1]))
	}

	return kv
}

// splitList splits by commas which are not inside of braces or quoted values
func splitList(raw string) (parts []string) {
	var quote, last rune
	var depth, start int
	var escaped bool

	for pos, r := range raw {
		prev := last
		if r != ' ' && r != '\t' && r != '\n' {
			last = r
		}

		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case (r == '"' || r == '\'') && prev == '=':
			quote = r
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, raw[start:pos])
			start = pos + 1
		}
	}

	return append(parts, raw[start:])
}

// unquote removes wrapping braces or quotes, escaped quotes inside are unescaped
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}

	first, last := value[0], value[len(value)-1]
	switch {
	case first == '{' && last == '}':
		return value[1 : len(value)-1]
	case (first == '"' || first == '\'') && last == first:
		inner := value[1 : len(value)-1]
		return strings.ReplaceAll(inner, "\\"+string(first), string(first))
	default:
		return value
	}
}

// List splits comma separated list, like \usepackage{amsmath,amssymb}, dropping empty items.
func List(raw string) (items []string) {
	for _, part := range splitList(raw) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}

	return
}
