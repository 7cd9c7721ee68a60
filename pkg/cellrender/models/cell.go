package models

// CellRow represents a single row of cells.
type CellRow struct {
	// R is the row index (1-based).
	R int
	// C maps column index (1-based, decimal string) to cell value.
	C map[string]CellValue
}
