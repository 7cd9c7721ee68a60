package models

// SheetData represents the extracted cells of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string
	// Rows contains non-empty rows in sheet order.
	Rows []CellRow
	// PrintAreas contains user-defined print areas, when requested.
	PrintAreas []PrintArea
}
