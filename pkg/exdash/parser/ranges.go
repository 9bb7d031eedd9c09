package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the defined name Excel stores print areas under.
const PrintAreaName = "_xlnm.Print_Area"

// ParseRangeReference parses a range reference.
// Format: 'SheetName'!$A$1:$D$10, SheetName!A1:D10 or A1:D10.
// The sheet name is empty when the reference does not carry one.
func ParseRangeReference(ref string) (string, *models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	// Only the first area of a multi-area reference is used
	if idx := strings.Index(ref, ","); idx >= 0 {
		ref = strings.TrimSpace(ref[:idx])
	}

	var sheetName string
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := parseRangeToArea(rangeStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to CellRange.
func parseRangeToArea(rangeStr string) (*models.CellRange, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected <start>:<end>")
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, err
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, err
	}

	area := &models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}
	return area, nil
}

// PrintArea returns the first print area defined for a sheet, or nil.
func PrintArea(f *excelize.File, sheetName string) (*models.CellRange, error) {
	for _, dn := range f.GetDefinedName() {
		// Look for _xlnm.Print_Area defined name
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}
		refSheet, area, err := ParseRangeReference(dn.RefersTo)
		if err != nil {
			return nil, err
		}
		if refSheet == "" || refSheet == sheetName {
			return area, nil
		}
	}
	return nil, nil
}
