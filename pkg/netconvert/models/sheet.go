package models

// SheetData is one named table ready for the sheet writer.
type SheetData struct {
	// Name is the sanitized, workbook-unique sheet name.
	Name string `json:"name"`
	// Source identifies the input the table came from.
	Source string `json:"source"`
	// Ranked holds the table and its derived-column directives.
	Ranked *RankedTable `json:"ranked"`
}

// SheetInfo is a sheet read back from a workbook.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains non-empty rows with cell values and formulas.
	Rows []CellRow `json:"rows,omitempty"`
	// DataRange is the bounding range of non-empty cells (e.g., "A1:J20").
	DataRange string `json:"data_range,omitempty"`
	// NonEmptyCells counts the cells inside DataRange that hold a value.
	NonEmptyCells int `json:"non_empty_cells,omitempty"`
	// Tables lists table objects as "name=range".
	Tables []string `json:"tables,omitempty"`
	// PrintAreas contains the sheet's print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// Charts contains the charts drawn on the sheet.
	Charts []Chart `json:"charts,omitempty"`
}
