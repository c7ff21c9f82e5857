// Package metadata extracts document level information (class, title, authors, packages) from a parsed tree.
package metadata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eolymp/go-textree"
)

// Document is metadata found in LaTeX preamble.
type Document struct {
	Class          string            `json:"class,omitempty" yaml:"class,omitempty"`
	ClassOptions   map[string]string `json:"class_options,omitempty" yaml:"class_options,omitempty"`
	FontSize       float32           `json:"font_size,omitempty" yaml:"font_size,omitempty"` // in points
	Title          string            `json:"title,omitempty" yaml:"title,omitempty"`
	Authors        []string          `json:"authors,omitempty" yaml:"authors,omitempty"`
	Date           string            `json:"date,omitempty" yaml:"date,omitempty"`
	Packages       []Package         `json:"packages,omitempty" yaml:"packages,omitempty"`
	Bibliographies []string          `json:"bibliographies,omitempty" yaml:"bibliographies,omitempty"`
	Toolchain      string            `json:"toolchain,omitempty" yaml:"toolchain,omitempty"`
}

type Package struct {
	Name    string            `json:"name" yaml:"name"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Extract collects metadata from the tree. Missing commands leave fields empty, the only error is a toolchain
// directive which is present but can not be parsed.
func Extract(tree *latex.Tree, toolchainMacro string) (*Document, error) {
	doc := &Document{}

	if class := tree.Macro("documentclass"); class != nil {
		doc.Class, _ = class.Argument()
		doc.ClassOptions = class.OptionMap()
		doc.FontSize = fontSize(class)
	}

	doc.Title = argument(tree.Macro("title"))
	doc.Date = argument(tree.Macro("date"))

	for _, author := range tree.Macros("author") {
		doc.Authors = append(doc.Authors, splitAuthors(author)...)
	}

	for _, use := range tree.Macros("usepackage") {
		name, ok := use.Argument()
		if !ok {
			continue
		}

		options := use.OptionMap()
		for _, pkg := range latex.List(name) {
			doc.Packages = append(doc.Packages, Package{Name: pkg, Options: options})
		}
	}

	doc.Bibliographies = Bibliographies(tree)

	version, err := Toolchain(tree, toolchainMacro)
	switch {
	case err == nil:
		doc.Toolchain = version.Original()
	case !errors.Is(err, ErrNoToolchain):
		return nil, fmt.Errorf("unable to read toolchain: %w", err)
	}

	return doc, nil
}

func argument(node *latex.Node) string {
	if node == nil {
		return ""
	}

	value, _ := node.Argument()
	return value
}

// fontSize finds class option like 12pt
func fontSize(class *latex.Node) float32 {
	for _, raw := range class.Options() {
		for _, option := range latex.List(raw) {
			if !strings.HasSuffix(option, "pt") {
				continue
			}

			if size, err := latex.MeasurePoints(option); err == nil {
				return size
			}
		}
	}

	return 0
}

// splitAuthors splits \author argument by \and
func splitAuthors(author *latex.Node) (names []string) {
	var arg *latex.Node
	for _, a := range author.ArgumentNodes() {
		if !a.Optional {
			arg = a
			break
		}
	}

	if arg == nil {
		return nil
	}

	var b strings.Builder
	flush := func() {
		if name := strings.TrimSpace(b.String()); name != "" {
			names = append(names, name)
		}

		b.Reset()
	}

	for _, child := range arg.Children {
		if child.Kind == latex.CommandKind && child.Name() == "and" {
			flush()
			continue
		}

		b.WriteString(child.Snippet())
	}

	flush()

	return
}
