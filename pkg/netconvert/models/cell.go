package models

// CellRow represents a single worksheet row read back from a workbook.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column name (e.g., "B") to cell value.
	C map[string]interface{} `json:"c"`
	// Formulas maps column name to the cell formula (optional).
	Formulas map[string]string `json:"formulas,omitempty"`
}
