// Package models defines data structures for spreadsheet dashboards.
package models

import (
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"golang.org/x/text/unicode/norm"
)

// ColumnKind is the type class of a table column.
type ColumnKind int

const (
	// KindNumeric holds float64 values.
	KindNumeric ColumnKind = iota
	// KindText holds categorical/text values.
	KindText
	// KindDatetime holds timestamps.
	KindDatetime
)

// String returns the string representation of a ColumnKind.
func (k ColumnKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindDatetime:
		return "datetime"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// DatetimeType is the Arrow type used for datetime columns.
var DatetimeType = &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}

// KindOf maps an Arrow data type to a ColumnKind.
func KindOf(dt arrow.DataType) (ColumnKind, error) {
	switch dt.ID() {
	case arrow.FLOAT64:
		return KindNumeric, nil
	case arrow.STRING:
		return KindText, nil
	case arrow.TIMESTAMP:
		return KindDatetime, nil
	default:
		return 0, fmt.Errorf("unsupported column type %s", dt)
	}
}

// Table is a read-only, column-oriented dataset backed by an Arrow table.
// Every column holds exactly one chunk and all columns have the same length.
type Table struct {
	tbl   arrow.Table
	index map[string]int
}

// NewTable wraps an Arrow table. The Table takes its own reference to tbl.
func NewTable(tbl arrow.Table) (*Table, error) {
	index := make(map[string]int, tbl.NumCols())
	for i, f := range tbl.Schema().Fields() {
		if _, err := KindOf(f.Type); err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Name, err)
		}
		if n := len(tbl.Column(i).Data().Chunks()); n != 1 {
			return nil, fmt.Errorf("column %q: expected 1 chunk, got %d", f.Name, n)
		}
		index[norm.NFC.String(f.Name)] = i
	}
	tbl.Retain()
	return &Table{tbl: tbl, index: index}, nil
}

// Release frees the Arrow buffers held by the table.
func (t *Table) Release() {
	if t.tbl != nil {
		t.tbl.Release()
		t.tbl = nil
	}
}

// Arrow returns the underlying Arrow table.
func (t *Table) Arrow() arrow.Table {
	return t.tbl
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return int(t.tbl.NumRows())
}

// ColumnNames returns the column names in header order.
func (t *Table) ColumnNames() []string {
	fields := t.tbl.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[norm.NFC.String(name)]
	if !ok {
		return nil, false
	}
	col := t.tbl.Column(i)
	kind, _ := KindOf(col.DataType())
	return &Column{
		Name: col.Name(),
		Kind: kind,
		data: col.Data().Chunk(0),
	}, true
}

// Columns returns every column in header order.
func (t *Table) Columns() []*Column {
	var cols []*Column
	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		cols = append(cols, col)
	}
	return cols
}

// Column is a typed view over one table column.
type Column struct {
	// Name is the header name.
	Name string
	// Kind is the column type class.
	Kind ColumnKind

	data arrow.Array
}

// Len returns the number of values (including missing ones).
func (c *Column) Len() int {
	return c.data.Len()
}

// IsNull reports whether row i holds a missing value.
func (c *Column) IsNull(i int) bool {
	return c.data.IsNull(i)
}

// NullCount returns the number of missing values.
func (c *Column) NullCount() int {
	return c.data.NullN()
}

// Float returns the value at row i of a numeric column.
func (c *Column) Float(i int) float64 {
	return c.data.(*array.Float64).Value(i)
}

// Time returns the value at row i of a datetime column.
func (c *Column) Time(i int) time.Time {
	ms := int64(c.data.(*array.Timestamp).Value(i))
	return time.UnixMilli(ms).UTC()
}

// Text returns the display form of the value at row i, whatever the column kind.
// Missing values return the empty string.
func (c *Column) Text(i int) string {
	if c.data.IsNull(i) {
		return ""
	}
	switch c.Kind {
	case KindNumeric:
		return FormatFloat(c.Float(i))
	case KindDatetime:
		return FormatTime(c.Time(i))
	default:
		return c.data.(*array.String).Value(i)
	}
}

// Floats returns the non-missing values of a numeric column in row order.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, c.Len()-c.NullCount())
	for i := 0; i < c.Len(); i++ {
		if !c.IsNull(i) {
			out = append(out, c.Float(i))
		}
	}
	return out
}

// Labels returns the text form of the non-missing values in row order.
func (c *Column) Labels() []string {
	out := make([]string, 0, c.Len()-c.NullCount())
	for i := 0; i < c.Len(); i++ {
		if !c.IsNull(i) {
			out = append(out, c.Text(i))
		}
	}
	return out
}
