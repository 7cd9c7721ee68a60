// Package parser reads table cells out of xlsx workbooks.
package parser

import (
	"strconv"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]models.CellValue)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue, isNumeric(cellType))
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// isNumeric reports whether excelize stores the cell as a number. Numbers
// written without an explicit type attribute come back as CellTypeUnset.
func isNumeric(t excelize.CellType) bool {
	return t == excelize.CellTypeNumber || t == excelize.CellTypeUnset
}

// parseValue maps a stored string onto Integer or Float for numeric cells.
// The number is kept only when it displays exactly as stored, so String()
// never differs from the cell text.
func parseValue(s string, numeric bool) models.CellValue {
	if !numeric {
		return models.Text(s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v := models.Integer(i); v.String() == s {
			return v
		}
		return models.Text(s)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if v := models.Float(f); v.String() == s {
			return v
		}
	}
	return models.Text(s)
}

// ColumnBounds returns the smallest and largest used column across rows,
// or 0, 0 when rows hold no cells.
func ColumnBounds(rows []models.CellRow) (minCol, maxCol int) {
	for _, row := range rows {
		for key := range row.C {
			col, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			if minCol == 0 || col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}
	return
}
