package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// SingleColumnHeader names the only column produced by the last-resort
// strategy.
const SingleColumnHeader = "Data"

// minAlignedColumns is the number of tokens a whitespace-aligned header needs.
const minAlignedColumns = 3

// alignedSeparator matches runs of two or more spaces or tabs.
var alignedSeparator = regexp.MustCompile(`(?:\t| {2,})+`)

// Strategy turns non-blank lines into a raw table.
// ok is false when the strategy does not apply to the input.
type Strategy struct {
	Name  string
	Parse func(lines []string) (table *models.RawTable, ok bool)
}

// ParseDelimited parses lines as delimiter-separated values with quoting.
// It fails when no candidate delimiter occurs in the input or the header has
// fewer than two fields.
func ParseDelimited(lines []string) (*models.RawTable, bool) {
	delim, found := DetectDelimiter(lines)
	if !found {
		return nil, false
	}
	return parseWith(lines, delim)
}

func parseWith(lines []string, delim rune) (*models.RawTable, bool) {
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var table models.RawTable
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			break
		}

		fields := trimFields(rec)
		if allEmpty(fields) {
			continue
		}
		if table.Header == nil {
			table.Header = fields
			continue
		}
		table.Rows = append(table.Rows, fitRow(fields, len(table.Header), false))
	}

	if len(table.Header) < 2 {
		return nil, false
	}
	return &table, true
}

// ParseAligned splits lines on runs of two or more spaces or a tab.
// The first line is the header and needs at least three tokens.
func ParseAligned(lines []string) (*models.RawTable, bool) {
	if len(lines) == 0 {
		return nil, false
	}
	header := splitAligned(lines[0])
	if len(header) < minAlignedColumns {
		return nil, false
	}

	table := &models.RawTable{Header: header}
	for _, line := range lines[1:] {
		table.Rows = append(table.Rows, fitRow(splitAligned(line), len(header), true))
	}
	return table, true
}

// ParseSingleColumn turns every line into a one-field row.
func ParseSingleColumn(lines []string) (*models.RawTable, bool) {
	table := &models.RawTable{Header: []string{SingleColumnHeader}}
	for _, line := range lines {
		table.Rows = append(table.Rows, []string{cleanField(line)})
	}
	return table, true
}

func splitAligned(line string) []string {
	return trimFields(alignedSeparator.Split(cleanField(line), -1))
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, bom, ""))
}

func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = cleanField(f)
	}
	return out
}

func allEmpty(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}

// fitRow pads fields with empty strings or shortens them to width.
// With merge set, surplus fields are joined into the last column.
func fitRow(fields []string, width int, merge bool) []string {
	switch {
	case len(fields) == width:
		return fields
	case len(fields) < width:
		out := make([]string, width)
		copy(out, fields)
		return out
	case merge && width > 0:
		out := make([]string, width)
		copy(out, fields[:width-1])
		out[width-1] = strings.Join(fields[width-1:], " ")
		return out
	default:
		return fields[:width]
	}
}
