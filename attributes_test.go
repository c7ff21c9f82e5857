package latex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMeasure(t *testing.T) {
	tt := []struct {
		name  string
		input string
		value float32
		unit  string
	}{
		{name: "pt", input: "12pt", value: 12, unit: "pt"},
		{name: "px", input: "131.02px", value: 131.02, unit: "px"},
		{name: "em", input: ".025em", value: .025, unit: "em"},
		{name: "negative float", input: "-.025em", value: -.025, unit: "em"},
		{name: "negative int", input: "-25em", value: -25, unit: "em"},
		{name: "%", input: "25%", value: 25, unit: "%"},
		{name: "\\textwidth", input: "0.25\\textwidth", value: 0.25, unit: "\\textwidth"},
		{name: "surrounding spaces", input: " 2cm ", value: 2, unit: "cm"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v, u, err := Measure(tc.input)
			if err != nil {
				t.Fatal(err)
			}

			if v != tc.value {
				t.Errorf("Value does not match: want %v, got %v", tc.value, v)
			}

			if u != tc.unit {
				t.Errorf("Unit does not match: want %v, got %v", tc.unit, u)
			}
		})
	}
}

func TestMeasureInvalid(t *testing.T) {
	for _, input := range []string{"", "pt", "twelve", "1.2.3cm"} {
		if _, _, err := Measure(input); err == nil {
			t.Errorf("Measure(%q) must fail", input)
		}
	}
}

func TestMeasurePoints(t *testing.T) {
	tt := []struct {
		input  string
		points float32
	}{
		{input: "10pt", points: 10},
		{input: "1in", points: 72.27},
		{input: "2pc", points: 24},
		{input: "65536sp", points: 1},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			got, err := MeasurePoints(tc.input)
			if err != nil {
				t.Fatal(err)
			}

			if got != tc.points {
				t.Errorf("Points do not match: want %v, got %v", tc.points, got)
			}
		})
	}

	if _, err := MeasurePoints("0.5\\textwidth"); err == nil {
		t.Error("relative units can not be converted to points")
	}
}

func TestKeyValue(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output map[string]string
	}{
		{
			name:   "one arg",
			input:  "key=value",
			output: map[string]string{"key": "value"},
		},
		{
			name:   "few arg",
			input:  "scale=1.2, angle=45",
			output: map[string]string{"scale": "1.2", "angle": "45"},
		},
		{
			name:   "lower case",
			input:  "SCALE=1.2, angle=45",
			output: map[string]string{"scale": "1.2", "angle": "45"},
		},
		{
			name:   "values surrounded by spaces",
			input:  "a = 1 , b = 3",
			output: map[string]string{"a": "1", "b": "3"},
		},
		{
			name:   "flags without values",
			input:  "a4paper, 12pt,twocolumn",
			output: map[string]string{"a4paper": "", "12pt": "", "twocolumn": ""},
		},
		{
			name:   "braced values",
			input:  "pdftitle={One, Two}, draft",
			output: map[string]string{"pdftitle": "One, Two", "draft": ""},
		},
		{
			name:   "escaped values",
			input:  "escaped=\"scale=1.2, \\\"angle\\\"=    45\", another=44",
			output: map[string]string{"escaped": "scale=1.2, \"angle\"=    45", "another": "44"},
		},
		{
			name:   "apostrophe in a value is not a quote",
			input:  "title=it's, b=1",
			output: map[string]string{"title": "it's", "b": "1"},
		},
		{
			name:   "cyrillic values",
			input:  "type=note, title=\"Привіт 👋\"",
			output: map[string]string{"type": "note", "title": "Привіт 👋"},
		},
		{
			name:   "empty parts",
			input:  ", ,a=1,",
			output: map[string]string{"a": "1"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v := KeyValue(tc.input)

			if !cmp.Equal(v, tc.output) {
				t.Errorf("Value does not match:\n%s\n", cmp.Diff(tc.output, v))
			}
		})
	}
}

func TestList(t *testing.T) {
	got := List("amsmath, amssymb,,{a,b}")
	want := []string{"amsmath", "amssymb", "{a,b}"}

	if !cmp.Equal(got, want) {
		t.Errorf("List does not match:\n%s\n", cmp.Diff(want, got))
	}
}
