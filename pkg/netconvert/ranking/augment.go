// Package ranking orders normalized tables by volume share and computes the
// Pareto cutoff and derived spreadsheet columns.
package ranking

import (
	"math"
	"sort"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// VolumeColumns lists the normalized names accepted as the volume column.
var VolumeColumns = []string{"packets", "packet"}

// Augment ranks t by the share of its volume column.
// Tables without a volume column, without rows, or whose volume total is not
// positive are returned unranked and unchanged. t itself is never modified.
func Augment(t *models.Table) *models.RankedTable {
	vol := t.ColumnIndex(VolumeColumns...)
	if vol < 0 || len(t.Rows) == 0 {
		return models.Unranked(t)
	}

	values := make([]float64, len(t.Rows))
	var total float64
	for i, row := range t.Rows {
		if vol < len(row) {
			if v, ok := models.Float(row[vol]); ok {
				values[i] = v
			}
		}
		total += values[i]
	}
	if total <= 0 {
		return models.Unranked(t)
	}

	pct := make([]float64, len(values))
	for i, v := range values {
		pct[i] = v / total * 100
	}

	order := make([]int, len(pct))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pct[order[a]] > pct[order[b]]
	})

	sorted := &models.Table{
		Name:    t.Name,
		Columns: append([]models.Column(nil), t.Columns...),
		Rows:    make([][]interface{}, len(order)),
	}
	sorted.Columns[vol].Numeric = true
	percentages := make([]float64, len(order))
	cumulative := make([]float64, len(order))
	var running float64
	for i, src := range order {
		row := append([]interface{}(nil), t.Rows[src]...)
		if vol < len(row) {
			row[vol] = numericOrNil(row[vol])
		}
		sorted.Rows[i] = row
		percentages[i] = pct[src]
		running += pct[src]
		cumulative[i] = running
	}

	idx := SelectCutoff(cumulative)
	r := &models.RankedTable{
		Table:        sorted,
		VolumeColumn: t.Columns[vol].Name,
		Total:        total,
		Percentages:  percentages,
		Cumulative:   cumulative,
		Cutoff: &models.CutoffSpec{
			RowIndex:          idx,
			CumulativePercent: Round2(cumulative[idx]),
		},
	}
	r.Derived = DerivedColumns(r, vol)
	return r
}

// AugmentAll ranks every table, preserving order.
func AugmentAll(tables []*models.Table) []*models.RankedTable {
	out := make([]*models.RankedTable, len(tables))
	for i, t := range tables {
		out[i] = Augment(t)
	}
	return out
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func numericOrNil(v interface{}) interface{} {
	if f, ok := models.Float(v); ok {
		return f
	}
	return nil
}
