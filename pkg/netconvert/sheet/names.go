package sheet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// MaxNameLength is the longest sheet name Excel accepts.
const MaxNameLength = 31

var invalidNameChars = regexp.MustCompile(`[^0-9A-Za-z ]`)

// SanitizeName reduces name to characters that are safe in a sheet name.
// Everything except ASCII letters, digits and spaces is removed, the result is
// trimmed, and at most MaxNameLength characters are kept. An empty result
// becomes models.DefaultSheetName.
func SanitizeName(name string) string {
	s := strings.TrimSpace(invalidNameChars.ReplaceAllString(name, ""))
	if len(s) > MaxNameLength {
		s = strings.TrimSpace(s[:MaxNameLength])
	}
	if s == "" {
		return models.DefaultSheetName
	}
	return s
}

// NameAssigner hands out sanitized sheet names that are unique within one
// workbook. Excel compares sheet names case-insensitively.
type NameAssigner struct {
	used map[string]struct{}
}

// NewNameAssigner creates an empty NameAssigner.
func NewNameAssigner() *NameAssigner {
	return &NameAssigner{used: make(map[string]struct{})}
}

// Assign sanitizes name and appends " 2", " 3", ... until it is unused.
func (a *NameAssigner) Assign(name string) string {
	base := SanitizeName(name)
	candidate := base
	for n := 2; a.taken(candidate); n++ {
		suffix := " " + strconv.Itoa(n)
		trimmed := base
		if len(trimmed)+len(suffix) > MaxNameLength {
			trimmed = strings.TrimSpace(trimmed[:MaxNameLength-len(suffix)])
		}
		candidate = trimmed + suffix
	}
	a.used[strings.ToLower(candidate)] = struct{}{}
	return candidate
}

func (a *NameAssigner) taken(name string) bool {
	_, ok := a.used[strings.ToLower(name)]
	return ok
}

// AssignNames sets a unique sheet name on every sheet, in order, derived from
// each sheet's table name.
func AssignNames(sheets []models.SheetData) {
	a := NewNameAssigner()
	for i := range sheets {
		base := sheets[i].Name
		if base == "" && sheets[i].Ranked != nil && sheets[i].Ranked.Table != nil {
			base = sheets[i].Ranked.Table.Name
		}
		sheets[i].Name = a.Assign(base)
	}
}

// TableName returns the Excel table object name for a sheet.
func TableName(sheetName string) string {
	return "tbl_" + strings.ReplaceAll(sheetName, " ", "_")
}
