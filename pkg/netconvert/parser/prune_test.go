package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

func newTable(name string, cols ...string) *models.Table {
	t := &models.Table{Name: name}
	row := make([]interface{}, len(cols))
	for i, c := range cols {
		t.Columns = append(t.Columns, models.Column{Name: c})
		row[i] = c + "-value"
	}
	t.Rows = [][]interface{}{row}
	return t
}

func TestPruneIsIdempotent(t *testing.T) {
	catalog := models.DefaultCatalog()
	tests := []struct {
		protocol string
		columns  []string
		expected []string
	}{
		{"IPv4", []string{"Address", "Country", "City", "Packets", "AS Organization"}, []string{"Address", "Packets"}},
		{"IPv6", []string{"Address", "Latitude", "Longitude", "AS Number"}, []string{"Address"}},
		{"IPv4", []string{"Address", "country"}, []string{"Address", "country"}},
		{"TCP", []string{"Address", "Port", "Packets"}, []string{"Address", "Packets"}},
		{"UDP", []string{"Address", " port "}, []string{"Address"}},
		{"Ethernet", []string{"Address", "Port", "Country"}, []string{"Address", "Port", "Country"}},
	}

	for _, tt := range tests {
		table := newTable(tt.protocol, tt.columns...)
		Prune(table, catalog)
		assert.Equal(t, tt.expected, table.ColumnNames(), tt.protocol)

		once := table.Clone()
		Prune(table, catalog)
		assert.Equal(t, once, table, "second prune changed %s table", tt.protocol)
	}
}

func TestPruneKeepsRowValuesAligned(t *testing.T) {
	table := newTable("IPv4", "Address", "Country", "Packets")
	Prune(table, models.DefaultCatalog())
	assert.Equal(t, []interface{}{"Address-value", "Packets-value"}, table.Rows[0])
}
