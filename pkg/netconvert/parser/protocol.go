package parser

import (
	"path/filepath"
	"strings"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// Label returns the protocol named by a section label line such as "IPv4:".
// Lines containing a comma or tab are never labels.
func Label(line string, catalog *models.Catalog) (string, bool) {
	if strings.ContainsAny(line, ",\t") {
		return "", false
	}
	key := models.NormalizeName(line)
	if key == "" {
		return "", false
	}
	for _, name := range catalog.ProtocolNames() {
		if models.NormalizeName(name) == key {
			return name, true
		}
	}
	return "", false
}

// StripLabel drops leading blank lines and a leading label line.
// It returns the remaining lines and the label's protocol ("" if none).
func StripLabel(lines []string, catalog *models.Catalog) ([]string, string) {
	lines = dropLeadingBlank(lines)
	if len(lines) == 0 {
		return nil, ""
	}
	if name, ok := Label(lines[0], catalog); ok {
		return lines[1:], name
	}
	return lines, ""
}

// Identify infers the protocol of a table.
// The base name of source is matched case-insensitively against the
// catalog's protocol keys; label is used when nothing matches, and
// models.DefaultSheetName when label is empty.
func Identify(source, label string, catalog *models.Catalog) string {
	base := strings.ToLower(filepath.Base(source))
	if source != "" {
		for _, name := range catalog.ProtocolNames() {
			if strings.Contains(base, strings.ToLower(name)) {
				return name
			}
		}
	}
	if label != "" {
		return label
	}
	return models.DefaultSheetName
}
