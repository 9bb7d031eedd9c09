package exdash

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/parser"
	"github.com/xuri/excelize/v2"
)

// PrintAreaRange selects the sheet's print area as the data region.
const PrintAreaRange = "print_area"

// Load reads the spreadsheet at path into a table.
// The first row of the data region names the columns.
func Load(path string, opts LoadOptions) (*models.Table, error) {
	log := opts.logger()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, NewLoadError(path, "open", fmt.Errorf("%w: %v", ErrFileNotFound, err))
		}
		return nil, NewLoadError(path, "open", err)
	}
	if info.IsDir() {
		return nil, NewLoadError(path, "open", fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path))
	}

	var grid *parser.Grid
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		grid, err = loadWorkbookGrid(path, opts)
	case ".csv":
		grid, err = loadCSVGrid(path, opts)
	default:
		err = NewLoadError(path, "open", fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext))
	}
	if err != nil {
		return nil, err
	}

	tbl, err := parser.BuildTable(grid, memory.NewGoAllocator())
	if err != nil {
		return nil, NewLoadError(path, "table", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	log.Debug("loaded table",
		"path", path,
		"source", grid.Source,
		"area", grid.Area.String(),
		"rows", tbl.NumRows(),
		"columns", len(tbl.ColumnNames()))
	for _, col := range tbl.Columns() {
		log.Debug("column", "name", col.Name, "kind", col.Kind.String(), "missing", col.NullCount())
	}
	return tbl, nil
}

func loadWorkbookGrid(path string, opts LoadOptions) (*parser.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "open", fmt.Errorf("%w: %v", ErrFileNotFound, err))
	}
	defer file.Close()

	f, err := excelize.OpenReader(file, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, NewLoadError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetName, err := parser.SheetName(f, opts.Sheet)
	if err != nil {
		return nil, NewLoadError(path, "sheet", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	var area *models.CellRange
	switch opts.Range {
	case "":
	case PrintAreaRange:
		area, err = parser.PrintArea(f, sheetName)
		if err == nil && area == nil {
			err = fmt.Errorf("sheet %q has no print area", sheetName)
		}
	default:
		var refSheet string
		refSheet, area, err = parser.ParseRangeReference(opts.Range)
		if err == nil && refSheet != "" && refSheet != sheetName {
			if opts.Sheet != "" {
				err = fmt.Errorf("range %q does not refer to sheet %q", opts.Range, sheetName)
			} else {
				sheetName, err = parser.SheetName(f, refSheet)
			}
		}
	}
	if err != nil {
		return nil, NewLoadError(path, "range", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	grid, err := parser.ExtractGrid(f, sheetName, area)
	if err != nil {
		return nil, NewLoadError(path, "cells", fmt.Errorf("%w: sheet %q: %v", ErrInvalidFormat, sheetName, err))
	}
	return grid, nil
}

func loadCSVGrid(path string, opts LoadOptions) (*parser.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "open", fmt.Errorf("%w: %v", ErrFileNotFound, err))
	}
	defer file.Close()

	var area *models.CellRange
	if opts.Range != "" && opts.Range != PrintAreaRange {
		if _, area, err = parser.ParseRangeReference(opts.Range); err != nil {
			return nil, NewLoadError(path, "range", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
		}
	}

	grid, err := parser.ExtractCSVGrid(file, filepath.Base(path), area)
	if err != nil {
		return nil, NewLoadError(path, "cells", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return grid, nil
}
