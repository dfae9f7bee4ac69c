package sheet

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// readCells converts the rows of a sheet into CellRows, skipping empty rows.
// Formulas are looked up for every non-empty cell.
func readCells(f *excelize.File, sheetName string, rows [][]string) ([]models.CellRow, error) {
	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		cellMap := make(map[string]interface{})
		formulaMap := make(map[string]string)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			col := columnName(colIdx + 1)
			cellMap[col] = parseValue(cellValue)

			formula, err := f.GetCellFormula(sheetName, col+strconv.Itoa(rowNum))
			if err != nil {
				return nil, err
			}
			if formula != "" {
				formulaMap[col] = formula
			}
		}

		if len(cellMap) == 0 {
			continue
		}
		cellRow := models.CellRow{R: rowNum, C: cellMap}
		if len(formulaMap) > 0 {
			cellRow.Formulas = formulaMap
		}
		result = append(result, cellRow)
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
