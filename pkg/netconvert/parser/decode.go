// Package parser turns raw network export text into normalized tables.
package parser

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const bom = "\ufeff"

// Decode converts raw file bytes to text.
// A leading BOM selects UTF-8 or UTF-16; otherwise the data is read as
// UTF-8. Invalid sequences become U+FFFD instead of failing.
func Decode(data []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

// SplitLines splits text into lines, accepting \n, \r\n and \r endings.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(strings.TrimPrefix(line, bom)) == ""
}

// nonBlank returns lines with blank lines removed.
func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if !isBlank(l) {
			out = append(out, l)
		}
	}
	return out
}

// dropLeadingBlank returns lines starting at the first non-blank line.
func dropLeadingBlank(lines []string) []string {
	for i, l := range lines {
		if !isBlank(l) {
			return lines[i:]
		}
	}
	return nil
}
