package sheet

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// ReadWorkbook opens an xlsx file and reports each sheet's values, formulas,
// data range, table objects, print areas and charts.
func ReadWorkbook(path string) (*models.WorkbookInfo, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	printAreas := readPrintAreas(f)
	charts, err := readCharts(path)
	if err != nil {
		charts = nil
	}

	info := &models.WorkbookInfo{BookName: filepath.Base(path)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}

		si := models.SheetInfo{
			Name:       name,
			PrintAreas: printAreas[name],
			Charts:     charts[name],
		}
		if si.Rows, err = readCells(f, name, rows); err != nil {
			return nil, fmt.Errorf("read cells of %q: %w", name, err)
		}
		si.DataRange, si.NonEmptyCells = dataRange(rows)

		tables, err := f.GetTables(name)
		if err != nil {
			return nil, fmt.Errorf("read tables of %q: %w", name, err)
		}
		for _, t := range tables {
			si.Tables = append(si.Tables, t.Name+"="+t.Range)
		}

		info.Sheets = append(info.Sheets, si)
	}

	return info, nil
}
