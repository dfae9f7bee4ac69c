package sheet

import (
	"github.com/xuri/excelize/v2"
)

const (
	highlightColor = "FFF2CC"
	headerColor    = "D9E1F2"
	// numFmtTwoDecimals is the built-in "0.00" number format.
	numFmtTwoDecimals = 2
)

// styles holds the style IDs registered once per workbook.
type styles struct {
	header           int
	percent          int
	highlight        int
	highlightPercent int
}

func newStyles(f *excelize.File) (*styles, error) {
	var (
		s   styles
		err error
	)
	fill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{highlightColor}}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	}); err != nil {
		return nil, err
	}
	if s.percent, err = f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals}); err != nil {
		return nil, err
	}
	if s.highlight, err = f.NewStyle(&excelize.Style{Fill: fill}); err != nil {
		return nil, err
	}
	if s.highlightPercent, err = f.NewStyle(&excelize.Style{Fill: fill, NumFmt: numFmtTwoDecimals}); err != nil {
		return nil, err
	}
	return &s, nil
}
