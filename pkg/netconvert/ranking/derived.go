package ranking

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// MarkerHeader is the header of the cutoff summary column.
const MarkerHeader = "Top 20%"

// TotalHeader returns the header of the total column for volume.
func TotalHeader(volume string) string {
	return "Total " + volume
}

// PercentHeader returns the header of the share column for volume.
func PercentHeader(volume string) string {
	return volume + "% of total"
}

// DerivedColumns builds the total, share and cutoff marker columns of r,
// appended after the table's columns. vol is the index of the volume column.
// Formulas address the sheet layout fixed by models.HeaderRow and
// models.FirstDataRow.
func DerivedColumns(r *models.RankedTable, vol int) []models.DerivedColumn {
	n := len(r.Table.Rows)
	width := len(r.Table.Columns)
	first := models.FirstDataRow
	last := first + n - 1

	volCol := columnName(vol + 1)
	totalCol := columnName(width + 1)
	pctCol := columnName(width + 2)

	total := models.DerivedColumn{Header: TotalHeader(r.VolumeColumn), Format: models.FormatNumber}
	share := models.DerivedColumn{Header: PercentHeader(r.VolumeColumn), Format: models.FormatPercent}
	marker := models.DerivedColumn{Header: MarkerHeader, Format: models.FormatPercent}

	for i := 0; i < n; i++ {
		row := first + i
		total.Cells = append(total.Cells, models.DerivedCell{
			Formula: fmt.Sprintf("SUM($%s$%d:$%s$%d)", volCol, first, volCol, last),
			Value:   r.Total,
		})
		share.Cells = append(share.Cells, models.DerivedCell{
			Formula: fmt.Sprintf("%s%d/%s%d*100", volCol, row, totalCol, row),
			Value:   r.Percentages[i],
		})
		marker.Cells = append(marker.Cells, models.DerivedCell{})
	}
	if n > 0 && r.Cutoff != nil {
		marker.Cells[0] = models.DerivedCell{
			Formula: fmt.Sprintf("ROUND(SUM(%s%d:%s%d),2)", pctCol, first, pctCol, first+r.Cutoff.RowIndex),
			Value:   r.Cutoff.CumulativePercent,
		}
	}

	return []models.DerivedColumn{total, share, marker}
}

func columnName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
