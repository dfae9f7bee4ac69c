package models

// RawTable is a parsed table whose fields are still strings.
type RawTable struct {
	// Header is the ordered list of column names (nil when absent).
	Header []string
	// Rows holds the data rows; each row has len(Header) fields.
	Rows [][]string
}

// Column describes one column of a normalized table.
type Column struct {
	// Name is the header text as found in the source.
	Name string `json:"name"`
	// Numeric is true when every value is a float64 or nil.
	Numeric bool `json:"numeric,omitempty"`
}

// Table is a normalized table named after its protocol.
// Numeric columns hold float64 or nil (missing); other columns hold strings.
type Table struct {
	// Name is the protocol key or DefaultSheetName.
	Name string `json:"name"`
	// Columns is the ordered list of columns.
	Columns []Column `json:"columns"`
	// Rows holds the typed data rows.
	Rows [][]interface{} `json:"rows"`
}

// IsEmpty reports whether the table came from input without any content.
func (t *Table) IsEmpty() bool {
	return len(t.Columns) == 0
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the index of the first column whose normalized name is
// one of keys, or -1.
func (t *Table) ColumnIndex(keys ...string) int {
	for i, c := range t.Columns {
		n := NormalizeName(c.Name)
		for _, k := range keys {
			if n == k {
				return i
			}
		}
	}
	return -1
}

// DropColumns removes every column for which drop returns true.
func (t *Table) DropColumns(drop func(Column) bool) {
	keep := make([]int, 0, len(t.Columns))
	for i, c := range t.Columns {
		if !drop(c) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.Columns) {
		return
	}

	cols := make([]Column, len(keep))
	for j, i := range keep {
		cols[j] = t.Columns[i]
	}
	for r, row := range t.Rows {
		out := make([]interface{}, len(keep))
		for j, i := range keep {
			if i < len(row) {
				out[j] = row[i]
			}
		}
		t.Rows[r] = out
	}
	t.Columns = cols
}

// Clone returns a copy of t that shares no slices with it.
func (t *Table) Clone() *Table {
	c := &Table{
		Name:    t.Name,
		Columns: append([]Column(nil), t.Columns...),
		Rows:    make([][]interface{}, len(t.Rows)),
	}
	for i, row := range t.Rows {
		c.Rows[i] = append([]interface{}(nil), row...)
	}
	return c
}
