package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimited(t *testing.T) {
	lines := []string{
		"\ufeff Address , Packets ,Bytes",
		`"10.0.0.1",80,"1,200"`,
		"10.0.0.2,20",
		"10.0.0.3,5,10,extra",
		",,",
	}

	table, ok := ParseDelimited(lines)
	require.True(t, ok)
	assert.Equal(t, []string{"Address", "Packets", "Bytes"}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"10.0.0.1", "80", "1,200"}, table.Rows[0])
	assert.Equal(t, []string{"10.0.0.2", "20", ""}, table.Rows[1])
	assert.Equal(t, []string{"10.0.0.3", "5", "10"}, table.Rows[2])
}

func TestParseDelimitedKeepsHeaderCase(t *testing.T) {
	table, ok := ParseDelimited([]string{"ADDRESS\ttx packets", "a\t1"})
	require.True(t, ok)
	assert.Equal(t, []string{"ADDRESS", "tx packets"}, table.Header)
}

func TestParseDelimitedQuotedDelimiter(t *testing.T) {
	table, ok := ParseDelimited([]string{
		"Address;Note",
		`"fe80::1";"a; b  c"`,
	})
	require.True(t, ok)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"fe80::1", "a; b  c"}, table.Rows[0])
}

func TestParseDelimitedRejectsUnstructuredText(t *testing.T) {
	_, ok := ParseDelimited([]string{"Address     Packets     Bytes", "a     1     2"})
	assert.False(t, ok)
}

func TestParseAligned(t *testing.T) {
	table, ok := ParseAligned([]string{
		"Address      Packets   Bytes",
		"10.0.0.1     12        3400",
		"10.0.0.2\t4",
		"host name    1         2     trailing words",
	})
	require.True(t, ok)
	assert.Equal(t, []string{"Address", "Packets", "Bytes"}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"10.0.0.1", "12", "3400"}, table.Rows[0])
	assert.Equal(t, []string{"10.0.0.2", "4", ""}, table.Rows[1])
	assert.Equal(t, []string{"host name", "1", "2 trailing words"}, table.Rows[2])
}

func TestParseAlignedNeedsThreeColumns(t *testing.T) {
	_, ok := ParseAligned([]string{"Address  Packets", "a  1"})
	assert.False(t, ok)
}

func TestParseSingleColumn(t *testing.T) {
	table, ok := ParseSingleColumn([]string{" free text ", "more"})
	require.True(t, ok)
	assert.Equal(t, []string{SingleColumnHeader}, table.Header)
	assert.Equal(t, [][]string{{"free text"}, {"more"}}, table.Rows)
}

func TestFitRow(t *testing.T) {
	tests := []struct {
		fields   []string
		width    int
		merge    bool
		expected []string
	}{
		{[]string{"a", "b"}, 2, false, []string{"a", "b"}},
		{[]string{"a"}, 3, false, []string{"a", "", ""}},
		{[]string{"a", "b", "c"}, 2, false, []string{"a", "b"}},
		{[]string{"a", "b", "c"}, 2, true, []string{"a", "b c"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, fitRow(tt.fields, tt.width, tt.merge))
	}
}
