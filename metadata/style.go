package metadata

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownStyle = errors.New("unknown document style")

// Style describes a supported document class.
type Style struct {
	Class    string `json:"class" yaml:"class"`
	Chapters bool   `json:"chapters" yaml:"chapters"` // class has \chapter
	Slides   bool   `json:"slides" yaml:"slides"`
}

var styles = map[string]Style{
	"article":    {Class: "article"},
	"amsart":     {Class: "amsart"},
	"extarticle": {Class: "extarticle"},
	"report":     {Class: "report", Chapters: true},
	"book":       {Class: "book", Chapters: true},
	"memoir":     {Class: "memoir", Chapters: true},
	"beamer":     {Class: "beamer", Slides: true},
	"letter":     {Class: "letter"},
	"olymp":      {Class: "olymp"},
}

// LookupStyle returns style for the document class.
func LookupStyle(class string) (Style, error) {
	style, ok := styles[class]
	if !ok {
		return Style{}, fmt.Errorf("%w %q", ErrUnknownStyle, class)
	}

	return style, nil
}

// Styles lists supported classes in alphabetical order.
func Styles() []string {
	classes := make([]string, 0, len(styles))
	for class := range styles {
		classes = append(classes, class)
	}

	sort.Strings(classes)
	return classes
}
