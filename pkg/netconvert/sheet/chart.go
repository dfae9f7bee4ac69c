package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// ChartTypeColumn is the plot type of the Pareto chart.
const ChartTypeColumn = "Column"

// ParetoChart describes a column chart of each row's share, from the first
// data row through the cutoff row. It returns nil for unranked tables.
func ParetoChart(sheetName string, r *models.RankedTable) *models.Chart {
	if r == nil || !r.Ranked() || len(r.Derived) < 2 {
		return nil
	}
	width := len(r.Table.Columns)
	pctCol := columnName(width + 2)
	last := models.FirstDataRow + r.Cutoff.RowIndex

	return &models.Chart{
		Cell:  cellName(width+len(r.Derived)+2, models.FirstDataRow),
		Type:  ChartTypeColumn,
		Title: fmt.Sprintf("%s %s", sheetName, r.Derived[1].Header),
		Series: []models.ChartSeries{{
			Name:       absRef(sheetName, pctCol, models.HeaderRow, pctCol, models.HeaderRow),
			Categories: absRef(sheetName, "A", models.FirstDataRow, "A", last),
			Values:     absRef(sheetName, pctCol, models.FirstDataRow, pctCol, last),
		}},
	}
}

// toExcelize converts a chart description into excelize options.
func toExcelize(c *models.Chart) *excelize.Chart {
	series := make([]excelize.ChartSeries, len(c.Series))
	for i, s := range c.Series {
		series[i] = excelize.ChartSeries{
			Name:       s.Name,
			Categories: s.Categories,
			Values:     s.Values,
		}
	}
	return &excelize.Chart{
		Type:      excelize.Col,
		Series:    series,
		Title:     []excelize.RichTextRun{{Text: c.Title}},
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{Width: 480, Height: 290},
	}
}

// absRef builds an absolute, sheet-qualified range reference.
func absRef(sheetName, c1 string, r1 int, c2 string, r2 int) string {
	if c1 == c2 && r1 == r2 {
		return fmt.Sprintf("'%s'!$%s$%d", sheetName, c1, r1)
	}
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheetName, c1, r1, c2, r2)
}

func columnName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
