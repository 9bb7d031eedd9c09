package parser

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"golang.org/x/text/unicode/norm"
)

// BuildTable converts a grid into a typed table.
// The first grid row names the columns; each column's kind is inferred from its values.
func BuildTable(grid *Grid, mem memory.Allocator) (*models.Table, error) {
	if len(grid.Cells) == 0 {
		return nil, ErrEmptySheet
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	names := HeaderNames(grid.Cells[0])
	body := grid.Cells[1:]
	numRows := len(body)

	fields := make([]arrow.Field, len(names))
	columns := make([]arrow.Column, len(names))
	for colIdx, name := range names {
		values := make([]Cell, numRows)
		for rowIdx, row := range body {
			if colIdx < len(row) {
				values[rowIdx] = row[colIdx]
			}
		}

		kind := InferKind(values)
		arr := buildArray(mem, kind, values)
		fields[colIdx] = arrow.Field{Name: name, Type: arr.DataType(), Nullable: true}

		chunked := arrow.NewChunked(arr.DataType(), []arrow.Array{arr})
		arr.Release()
		columns[colIdx] = *arrow.NewColumn(fields[colIdx], chunked)
		chunked.Release()
	}
	defer func() {
		for i := range columns {
			columns[i].Release()
		}
	}()

	schema := arrow.NewSchema(fields, nil)
	tbl := array.NewTable(schema, columns, int64(numRows))
	defer tbl.Release()

	return models.NewTable(tbl)
}

// HeaderNames derives unique column names from the header row.
// Blank headers become "Unnamed: <index>" and repeated names get a ".<n>" suffix.
func HeaderNames(header []Cell) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, cell := range header {
		name := norm.NFC.String(cell.String())
		if cell.Kind == CellMissing || name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if next, dup := seen[name]; dup {
			base := name
			for n := next; ; n++ {
				candidate := fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[candidate]; !taken {
					seen[base] = n + 1
					name = candidate
					break
				}
			}
		}
		seen[name] = 1
		names[i] = name
	}
	return names
}

// InferKind picks the column kind for a set of values:
// numeric when every present value is a number (or none is present),
// datetime when every present value is a timestamp, text otherwise.
func InferKind(values []Cell) models.ColumnKind {
	numbers, times, present := 0, 0, 0
	for _, v := range values {
		switch v.Kind {
		case CellMissing:
			continue
		case CellNumber:
			numbers++
		case CellDatetime:
			times++
		}
		present++
	}

	switch {
	case present == numbers:
		return models.KindNumeric
	case present == times:
		return models.KindDatetime
	default:
		return models.KindText
	}
}

func buildArray(mem memory.Allocator, kind models.ColumnKind, values []Cell) arrow.Array {
	switch kind {
	case models.KindNumeric:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.Reserve(len(values))
		for _, v := range values {
			if v.Kind == CellMissing {
				b.AppendNull()
				continue
			}
			b.Append(v.Num)
		}
		return b.NewArray()
	case models.KindDatetime:
		b := array.NewTimestampBuilder(mem, models.DatetimeType)
		defer b.Release()
		b.Reserve(len(values))
		for _, v := range values {
			if v.Kind == CellMissing {
				b.AppendNull()
				continue
			}
			b.Append(arrow.Timestamp(v.Time.UnixMilli()))
		}
		return b.NewArray()
	default:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		b.Reserve(len(values))
		for _, v := range values {
			if v.Kind == CellMissing {
				b.AppendNull()
				continue
			}
			b.Append(v.String())
		}
		return b.NewArray()
	}
}
