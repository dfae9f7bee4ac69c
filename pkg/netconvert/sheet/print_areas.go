package sheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// readPrintAreas returns the print areas of a workbook keyed by sheet name.
func readPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses 'Sheet'!$A$1:$D$10 or Sheet!$A$1:$D$10,
// optionally several comma-separated areas.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var (
		areas     []models.PrintArea
		sheetName string
	)

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range such as $A$1:$D$10.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
}
