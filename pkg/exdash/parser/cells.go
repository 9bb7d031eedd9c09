// Package parser turns spreadsheet cells into typed tables.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// CellKind is the inferred type of a single cell.
type CellKind int

const (
	// CellMissing is an empty, NA or error cell.
	CellMissing CellKind = iota
	// CellNumber is a numeric cell.
	CellNumber
	// CellText is a text cell.
	CellText
	// CellDatetime is a date or timestamp cell.
	CellDatetime
)

// Cell is a classified cell value.
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
	Time time.Time
}

// String returns the text form of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return models.FormatFloat(c.Num)
	case CellDatetime:
		return models.FormatTime(c.Time)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// naValues are the tokens read as missing values.
var naValues = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
	"nan":  true,
	"-NaN": true,
	"-nan": true,
	"null": true,
	"NULL": true,
	"None": true,
	"<NA>": true,
	"#N/A": true,
	"#NA":  true,
}

// IsNA reports whether s is read as a missing value.
func IsNA(s string) bool {
	return naValues[strings.TrimSpace(s)]
}

// parseValue classifies a textual value.
// NA tokens become missing; numbers and dates are recognised; anything else is text.
func parseValue(s string) Cell {
	if IsNA(s) {
		return Cell{Kind: CellMissing}
	}
	trimmed := strings.TrimSpace(s)
	// Try number
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Cell{Kind: CellNumber, Num: f}
	}
	// Try date
	if t, ok := parseTextDate(trimmed); ok {
		return Cell{Kind: CellDatetime, Time: t}
	}
	return Cell{Kind: CellText, Text: s}
}

func numberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Num: f}
}

func timeCell(t time.Time) Cell {
	return Cell{Kind: CellDatetime, Time: t.UTC().Round(time.Millisecond)}
}
