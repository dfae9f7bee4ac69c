package sheet

import (
	"github.com/xuri/excelize/v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// PrintAreaViews slices every sheet of info by its print areas, in sheet
// order.
func PrintAreaViews(info *models.WorkbookInfo) []models.PrintAreaView {
	var views []models.PrintAreaView
	for _, s := range info.Sheets {
		for _, area := range s.PrintAreas {
			views = append(views, printAreaView(info.BookName, s, area))
		}
	}
	return views
}

func printAreaView(bookName string, s models.SheetInfo, area models.PrintArea) models.PrintAreaView {
	view := models.PrintAreaView{
		BookName:  bookName,
		SheetName: s.Name,
		Area:      area,
		Tables:    s.Tables,
	}

	for _, row := range s.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		clipped := models.CellRow{R: row.R, C: make(map[string]interface{})}
		for col, v := range row.C {
			if !inColumns(col, area) {
				continue
			}
			clipped.C[col] = v
			if f, ok := row.Formulas[col]; ok {
				if clipped.Formulas == nil {
					clipped.Formulas = make(map[string]string)
				}
				clipped.Formulas[col] = f
			}
		}
		if len(clipped.C) > 0 {
			view.Rows = append(view.Rows, clipped)
		}
	}

	for _, c := range s.Charts {
		col, row, err := excelize.CellNameToCoordinates(c.Cell)
		if err != nil {
			continue
		}
		if row >= area.R1 && row <= area.R2 && col >= area.C1 && col <= area.C2 {
			view.Charts = append(view.Charts, c)
		}
	}

	return view
}

func inColumns(col string, area models.PrintArea) bool {
	n, err := excelize.ColumnNameToNumber(col)
	if err != nil {
		return false
	}
	return n >= area.C1 && n <= area.C2
}
