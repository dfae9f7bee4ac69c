package models

// Sheet layout shared by formula generation and the sheet writer.
const (
	// HeaderRow is the 1-based worksheet row holding column names.
	HeaderRow = 1
	// FirstDataRow is the 1-based worksheet row of the first data row.
	FirstDataRow = 2
)

// CutoffSpec identifies the Pareto cutoff of a ranked table.
type CutoffSpec struct {
	// RowIndex is the 0-based index into the sorted rows.
	RowIndex int `json:"row_index"`
	// CumulativePercent is the cumulative share at RowIndex, rounded to 2 decimals.
	CumulativePercent float64 `json:"cumulative_percent"`
}

// DerivedFormat selects the display format of a derived column.
type DerivedFormat int

const (
	// FormatNumber displays plain numbers.
	FormatNumber DerivedFormat = iota
	// FormatPercent displays numbers with two decimals.
	FormatPercent
)

// DerivedCell is one cell of a derived column.
// A zero DerivedCell is left blank.
type DerivedCell struct {
	Formula string      `json:"formula,omitempty"`
	Value   interface{} `json:"value,omitempty"`
}

// IsBlank reports whether the cell carries neither formula nor value.
func (c DerivedCell) IsBlank() bool {
	return c.Formula == "" && c.Value == nil
}

// DerivedColumn is a column appended after the table's own columns.
type DerivedColumn struct {
	Header string        `json:"header"`
	Format DerivedFormat `json:"format"`
	// Cells has one entry per table row.
	Cells []DerivedCell `json:"cells"`
}

// RankedTable is a table reordered by volume share plus the directives the
// sheet writer needs to emit derived columns.
type RankedTable struct {
	Table *Table `json:"table"`
	// VolumeColumn is the header of the volume column ("" when unranked).
	VolumeColumn string `json:"volume_column,omitempty"`
	// Total is the sum of the volume column.
	Total float64 `json:"total,omitempty"`
	// Percentages holds each sorted row's share of Total.
	Percentages []float64 `json:"percentages,omitempty"`
	// Cumulative holds the running sum of Percentages.
	Cumulative []float64 `json:"cumulative,omitempty"`
	// Cutoff is nil when ranking was skipped.
	Cutoff  *CutoffSpec     `json:"cutoff,omitempty"`
	Derived []DerivedColumn `json:"derived,omitempty"`
}

// Unranked wraps t without any ranking.
func Unranked(t *Table) *RankedTable {
	return &RankedTable{Table: t}
}

// Ranked reports whether ranking was applied.
func (r *RankedTable) Ranked() bool {
	return r.Cutoff != nil
}

// Highlighted reports whether the sorted row at index i is the cutoff row.
func (r *RankedTable) Highlighted(i int) bool {
	return r.Cutoff != nil && r.Cutoff.RowIndex == i
}

// Headers returns the table's column names followed by derived headers.
func (r *RankedTable) Headers() []string {
	headers := r.Table.ColumnNames()
	for _, d := range r.Derived {
		headers = append(headers, d.Header)
	}
	return headers
}
