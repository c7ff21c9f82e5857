// Package view provides output formatting for texparse commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format represents an output format.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var (
	fileStyle  = color.New(color.FgCyan, color.Bold)
	lineStyle  = color.New(color.FgHiBlue, color.Bold)
	matchStyle = color.New(color.FgRed, color.Bold)
	keyStyle   = color.New(color.Bold)
)

// ValidFormats returns the list of valid output formats.
func ValidFormats() []string {
	return []string{string(FormatPlain), string(FormatJSON), string(FormatYAML)}
}

// ValidateFormat checks if the format is valid, empty format means plain.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}

	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}

	return fmt.Errorf("invalid output format %q: must be one of %s", format, strings.Join(ValidFormats(), ", "))
}

// Renderer renders data in a specific format.
type Renderer struct {
	format Format
	writer io.Writer
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}

	if format == "" {
		format = FormatPlain
	}

	return &Renderer{format: format, writer: os.Stdout}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

func (r *Renderer) Format() Format {
	return r.format
}

// Structured reports whether output is machine readable.
func (r *Renderer) Structured() bool {
	return r.format == FormatJSON || r.format == FormatYAML
}

// Render writes value as JSON or YAML. In plain format "plain" callback is used instead.
func (r *Renderer) Render(v any, plain func()) error {
	switch r.format {
	case FormatJSON:
		return r.RenderJSON(v)
	case FormatYAML:
		return r.RenderYAML(v)
	default:
		if plain != nil {
			plain()
		}

		return nil
	}
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderYAML renders an object as YAML.
func (r *Renderer) RenderYAML(v any) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// RenderText renders plain text as is.
func (r *Renderer) RenderText(text string) {
	fmt.Fprint(r.writer, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(r.writer)
	}
}

// RenderKeyValue renders a key-value pair, empty values are skipped.
func (r *Renderer) RenderKeyValue(key, value string) {
	if value == "" {
		return
	}

	keyStyle.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// RenderMatch renders a source line with the match underlined by carets.
func (r *Renderer) RenderMatch(file string, line int, text string, column, length int) {
	fmt.Fprintf(r.writer, "%s:%s: %s\n", fileStyle.Sprint(file), lineStyle.Sprint(line), text)

	if length < 1 {
		length = 1
	}

	prefix := len(fmt.Sprintf("%s:%d: ", file, line))
	fmt.Fprintln(r.writer, strings.Repeat(" ", prefix+column)+matchStyle.Sprint(strings.Repeat("^", length)))
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}

// Truncate truncates a string to the specified number of runes.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
