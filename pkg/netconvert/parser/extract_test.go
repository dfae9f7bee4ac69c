package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

func TestExtractCommaDelimited(t *testing.T) {
	e := NewExtractor(nil)
	table := e.Extract("Address,Packets\n\"A\",80\n\"B\",20\n", "capture.csv")

	assert.Equal(t, models.DefaultSheetName, table.Name)
	assert.Equal(t, []string{"Address", "Packets"}, table.ColumnNames())
	assert.True(t, table.Columns[1].Numeric)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []interface{}{"A", 80.0}, table.Rows[0])
	assert.Equal(t, []interface{}{"B", 20.0}, table.Rows[1])
}

func TestExtractPreservesRowCountAndWidth(t *testing.T) {
	var b strings.Builder
	b.WriteString("Address,Packets,Bytes,Tx Packets\n")
	for i := 0; i < 25; i++ {
		b.WriteString("10.0.0.1,1,2,3\n")
	}

	table := NewExtractor(nil).Extract(b.String(), "endpoints.csv")
	assert.Len(t, table.Rows, 25)
	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Columns))
	}
}

func TestExtractStripsLabelLine(t *testing.T) {
	text := "\n\n  IPv6:\nAddress\tPackets\tBytes\nfe80::1\t3\t120\n"
	table := NewExtractor(nil).Extract(text, "export.txt")

	assert.Equal(t, "IPv6", table.Name)
	assert.Equal(t, []string{"Address", "Packets", "Bytes"}, table.ColumnNames())
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []interface{}{"fe80::1", 3.0, 120.0}, table.Rows[0])
}

func TestExtractPrunesGeoColumnsForIP(t *testing.T) {
	text := strings.Join([]string{
		"Address,Packets,Bytes,Tx Packets,Tx Bytes,Rx Packets,Rx Bytes,Country,City,Latitude,Longitude,AS Number,AS Organization",
		"8.8.8.8,10,1000,5,500,5,500,United States,Mountain View,37.4,-122.1,15169,GOOGLE",
	}, "\n")

	for _, source := range []string{"ipv4_endpoints.csv", "IPV6.csv"} {
		table := NewExtractor(nil).Extract(text, source)
		assert.Equal(t,
			[]string{"Address", "Packets", "Bytes", "Tx Packets", "Tx Bytes", "Rx Packets", "Rx Bytes"},
			table.ColumnNames(), source)
		require.Len(t, table.Rows, 1)
		assert.Len(t, table.Rows[0], 7)
	}
}

func TestExtractKeepsGeoColumnsForOtherProtocols(t *testing.T) {
	text := "Address,Packets,Country\naa:bb,1,Norway\n"
	table := NewExtractor(nil).Extract(text, "ethernet.csv")
	assert.Equal(t, []string{"Address", "Packets", "Country"}, table.ColumnNames())
}

func TestExtractDropsPortForTransport(t *testing.T) {
	text := "Address,PORT,Packets\n10.0.0.1,443,7\n"
	for _, source := range []string{"tcp.csv", "Udp-endpoints.txt"} {
		table := NewExtractor(nil).Extract(text, source)
		for _, c := range table.Columns {
			assert.NotEqual(t, "port", strings.ToLower(c.Name), source)
		}
		assert.Equal(t, []string{"Address", "Packets"}, table.ColumnNames())
	}
}

func TestExtractAlignedFallback(t *testing.T) {
	text := "TCP\nAddress        Port    Packets   Bytes\n10.1.1.1       80      12        4,096\n"
	table := NewExtractor(nil).Extract(text, "dump.txt")

	assert.Equal(t, "TCP", table.Name)
	assert.Equal(t, []string{"Address", "Packets", "Bytes"}, table.ColumnNames())
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []interface{}{"10.1.1.1", 12.0, 4096.0}, table.Rows[0])
}

func TestExtractSingleColumnLastResort(t *testing.T) {
	table := NewExtractor(nil).Extract("just some words\nmore words\n", "notes.txt")

	assert.Equal(t, []string{SingleColumnHeader}, table.ColumnNames())
	assert.Equal(t, [][]interface{}{{"just some words"}, {"more words"}}, table.Rows)
}

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n   \n", "IPv4\n\n"} {
		table := NewExtractor(nil).Extract(text, "ipv4.txt")
		assert.True(t, table.IsEmpty(), "%q", text)
		assert.Empty(t, table.Rows)
	}
}

func TestExtractNumericCoercionIsTotal(t *testing.T) {
	text := "Address,Packets,Bytes,Latitude,AS Number,Note\na,12,,n/a,AS15169,7\nb,1e3,-4.5,12.5,64500,x\n"
	table := NewExtractor(nil).Extract(text, "ethernet.csv")

	for i, c := range table.Columns {
		for _, row := range table.Rows {
			if !c.Numeric {
				assert.IsType(t, "", row[i])
				continue
			}
			if row[i] != nil {
				assert.IsType(t, float64(0), row[i], c.Name)
			}
		}
	}
	assert.Equal(t, []interface{}{"a", 12.0, nil, nil, nil, "7"}, table.Rows[0])
	assert.Equal(t, []interface{}{"b", 1000.0, -4.5, 12.5, 64500.0, "x"}, table.Rows[1])
}

func TestExtractDecimalCommaIsMissing(t *testing.T) {
	tests := []struct {
		text string
		want []interface{}
	}{
		{"Address;Packets\nA;1,5\nB;2\n", []interface{}{"A", nil}},
		{"Address;Packets\nA;1,2,3\nB;2\n", []interface{}{"A", nil}},
		{"Address;Packets\nA;1,500\nB;2\n", []interface{}{"A", 1500.0}},
	}

	for _, tt := range tests {
		table := NewExtractor(nil).Extract(tt.text, "x.csv")
		if assert.Len(t, table.Rows, 2, "%q", tt.text) {
			assert.Equal(t, tt.want, table.Rows[0], "%q", tt.text)
			assert.Equal(t, []interface{}{"B", 2.0}, table.Rows[1], "%q", tt.text)
		}
	}
}

func TestExtractAllSplitsSections(t *testing.T) {
	text := strings.Join([]string{
		"Ethernet:",
		"Address,Port,Packets",
		"00:11:22:33:44:55,,4",
		"",
		"UDP:",
		"Address,Port,Packets",
		"10.0.0.1,53,9",
		"10.0.0.2,53,1",
	}, "\n")

	tables := NewExtractor(nil).ExtractAll(text, "tcp-capture.txt")
	require.Len(t, tables, 2)
	assert.Equal(t, "Ethernet", tables[0].Name)
	assert.Equal(t, []string{"Address", "Port", "Packets"}, tables[0].ColumnNames())
	assert.Len(t, tables[0].Rows, 1)
	assert.Equal(t, "UDP", tables[1].Name)
	assert.Equal(t, []string{"Address", "Packets"}, tables[1].ColumnNames())
	assert.Len(t, tables[1].Rows, 2)
}

func TestExtractAllSingleSection(t *testing.T) {
	tables := NewExtractor(nil).ExtractAll("IPv4\nAddress,Packets\n1.1.1.1,2\n", "x.txt")
	require.Len(t, tables, 1)
	assert.Equal(t, "IPv4", tables[0].Name)
}

func TestExtractWithCustomCatalog(t *testing.T) {
	cfg := models.DefaultCatalogConfig()
	cfg.Schemas = append(cfg.Schemas, models.Schema{Name: "QUIC", Headers: []string{"Address", "Port", "Packets"}})
	cfg.PortProtocols = append(cfg.PortProtocols, "QUIC")
	e := NewExtractor(models.NewCatalog(cfg))

	table := e.Extract("Address,Port,Packets\n10.0.0.1,443,3\n", "quic.csv")
	assert.Equal(t, "QUIC", table.Name)
	assert.Equal(t, []string{"Address", "Packets"}, table.ColumnNames())
}

func TestParseReportsStrategy(t *testing.T) {
	e := NewExtractor(nil)
	tests := []struct {
		lines    []string
		expected string
	}{
		{[]string{"a,b", "1,2"}, "delimited"},
		{[]string{"a   b   c", "1   2   3"}, "aligned"},
		{[]string{"free text"}, "single-column"},
	}

	for _, tt := range tests {
		_, name := e.Parse(tt.lines)
		assert.Equal(t, tt.expected, name, "%v", tt.lines)
	}

	names := make([]string, 0, 3)
	for _, s := range e.Strategies() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"delimited", "aligned", "single-column"}, names)
}
