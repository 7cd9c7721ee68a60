package models

// WorkbookData represents a workbook with its sheets in workbook order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets holds the selected sheets.
	Sheets []SheetData
}
