package parser

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet indicates a sheet or range without any non-empty cell.
var ErrEmptySheet = errors.New("no data found")

// ErrEmptyHeader indicates a data region whose first row is blank.
var ErrEmptyHeader = errors.New("header row is empty")

// Grid is a rectangular block of classified cells. Row 0 is the header.
type Grid struct {
	// Source names the sheet (or file) the grid was read from.
	Source string
	// Area is the region the grid covers.
	Area models.CellRange
	// Cells holds Area.Rows() rows of Area.Cols() cells each.
	Cells [][]Cell
}

// ExtractGrid reads and classifies the cells of a sheet.
// When area is nil the bounding box of non-empty cells is used.
func ExtractGrid(f *excelize.File, sheetName string, area *models.CellRange) (*Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	region, err := resolveRegion(rows, area)
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	r := &cellReader{
		f:          f,
		sheet:      sheetName,
		date1904:   date1904,
		dateStyles: make(map[int]bool),
	}

	grid := &Grid{Source: sheetName, Area: *region}
	for row := region.R1; row <= region.R2; row++ {
		cells := make([]Cell, 0, region.Cols())
		for col := region.C1; col <= region.C2; col++ {
			raw := cellAt(rows, row-1, col-1)
			if raw == "" {
				cells = append(cells, Cell{Kind: CellMissing})
				continue
			}
			cells = append(cells, r.read(col, row, raw))
		}
		grid.Cells = append(grid.Cells, cells)
	}
	return grid, nil
}

// resolveRegion validates area against rows, or detects it when nil.
func resolveRegion(rows [][]string, area *models.CellRange) (*models.CellRange, error) {
	if area == nil {
		area = DataBounds(rows)
		if area == nil {
			return nil, ErrEmptySheet
		}
	}
	if countNonEmptyCells(rows, area.R1-1, area.R2-1, area.C1-1, area.C2-1) == 0 {
		return nil, ErrEmptySheet
	}
	if countNonEmptyCells(rows, area.R1-1, area.R1-1, area.C1-1, area.C2-1) == 0 {
		return nil, ErrEmptyHeader
	}
	return area, nil
}

// cellReader classifies raw cell values using the cell type and number format.
type cellReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (r *cellReader) read(col, row int, raw string) Cell {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return parseValue(raw)
	}
	typ, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return parseValue(raw)
	}

	switch typ {
	case excelize.CellTypeError:
		return Cell{Kind: CellMissing}
	case excelize.CellTypeBool:
		if raw == "1" || raw == "TRUE" || raw == "true" {
			return Cell{Kind: CellText, Text: "True"}
		}
		return Cell{Kind: CellText, Text: "False"}
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return timeCell(t)
		}
		if t, ok := parseTextDate(raw); ok {
			return timeCell(t)
		}
		return parseValue(raw)
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return parseValue(raw)
		}
		if r.isDateCell(cellName) {
			if t, err := excelize.ExcelDateToTime(v, r.date1904); err == nil {
				return timeCell(t)
			}
		}
		return numberCell(v)
	default:
		return parseValue(raw)
	}
}

// isDateCell reports whether the cell's number format renders a date.
func (r *cellReader) isDateCell(cellName string) bool {
	styleID, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil {
		custom := ""
		if style.CustomNumFmt != nil {
			custom = *style.CustomNumFmt
		}
		isDate = isDateNumFmt(style.NumFmt, custom)
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// SheetName resolves the sheet to read: name when given, the first sheet otherwise.
func SheetName(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrEmptySheet
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found", name)
}
