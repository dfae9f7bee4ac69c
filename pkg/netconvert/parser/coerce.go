package parser

import "github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"

// Coerce builds a typed table from raw.
// Columns named in the catalog's numeric set become float64 values; empty or
// non-numeric fields in those columns become nil.
func Coerce(raw *models.RawTable, catalog *models.Catalog) *models.Table {
	t := &models.Table{
		Columns: make([]models.Column, len(raw.Header)),
		Rows:    make([][]interface{}, 0, len(raw.Rows)),
	}
	for i, h := range raw.Header {
		t.Columns[i] = models.Column{Name: h, Numeric: catalog.IsNumericColumn(h)}
	}

	for _, row := range raw.Rows {
		values := make([]interface{}, len(t.Columns))
		for i, col := range t.Columns {
			var field string
			if i < len(row) {
				field = row[i]
			}
			if col.Numeric {
				values[i] = coerceNumber(field)
			} else {
				values[i] = field
			}
		}
		t.Rows = append(t.Rows, values)
	}
	return t
}

func coerceNumber(field string) interface{} {
	if f, ok := models.ParseNumber(field); ok {
		return f
	}
	return nil
}
