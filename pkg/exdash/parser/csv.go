package parser

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// ExtractCSVGrid reads and classifies the records of a CSV stream.
// When area is nil the bounding box of non-empty cells is used.
// A leading byte-order mark is dropped; UTF-16 input with a BOM is decoded to UTF-8.
func ExtractCSVGrid(r io.Reader, source string, area *models.CellRange) (*Grid, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	region, err := resolveRegion(rows, area)
	if err != nil {
		return nil, err
	}

	grid := &Grid{Source: source, Area: *region}
	for row := region.R1; row <= region.R2; row++ {
		cells := make([]Cell, 0, region.Cols())
		for col := region.C1; col <= region.C2; col++ {
			cells = append(cells, parseValue(cellAt(rows, row-1, col-1)))
		}
		grid.Cells = append(grid.Cells, cells)
	}
	return grid, nil
}
