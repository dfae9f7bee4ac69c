package models

// WorkbookData is the ordered set of sheets produced by one conversion.
type WorkbookData struct {
	// BookName is the output workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheets in input processing order.
	Sheets []SheetData `json:"sheets"`
}

// WorkbookInfo is a workbook read back from disk.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheets in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}
