package latex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Measure parses measurement value, a number and units, for example: 5.1cm, 6em, 0.25\textwidth
func Measure(raw string) (float32, string, error) {
	match := measure.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) == 0 || match[1] == "" || match[1] == "-" {
		return 0, "", errors.New("unable to parse measurement")
	}

	number, err := strconv.ParseFloat(match[1], 32)
	if err != nil {
		return 0, "", err
	}

	return float32(number), strings.TrimSpace(match[2]), nil
}

// MeasurePoints parses measurement and converts it to TeX points.
func MeasurePoints(raw string) (float32, error) {
	n, u, err := Measure(raw)
	if err != nil {
		return 0, err
	}

	return ToPoints(n, u)
}

// ToPoints converts value to TeX points (1/72.27 of an inch). Font relative units (em, ex) assume 10pt font.
func ToPoints(value float32, unit string) (float32, error) {
	switch unit {
	case "pt":
		return value, nil
	case "mm":
		return value * 72.27 / 25.4, nil
	case "cm":
		return value * 72.27 / 2.54, nil
	case "in":
		return value * 72.27, nil
	case "bp", "px":
		return value * 72.27 / 72, nil
	case "pc":
		return value * 12, nil
	case "dd":
		return value * 1238 / 1157, nil
	case "cc":
		return value * 12 * 1238 / 1157, nil
	case "sp":
		return value / 65536, nil
	case "ex":
		return value * 4.3, nil
	case "em":
		return value * 10, nil
	default:
		return 0, fmt.Errorf("measurement unit %#v is not supported", unit)
	}
}
