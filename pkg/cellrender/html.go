package cellrender

import (
	"html/template"
	"io"
	"strconv"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/parser"
)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.BookName}}</title>
</head>
<body>
{{range .Tables}}<table>
<caption>{{.Caption}}</caption>
<tbody>
{{range .Rows}}<tr data-row="{{.R}}">{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{end}}</body>
</html>
`))

type tableView struct {
	Caption string
	Rows    []rowView
}

type rowView struct {
	R     int
	Cells []template.HTML
}

type documentView struct {
	BookName string
	Tables   []tableView
}

// WriteHTML writes wb as an HTML document with one table per sheet, or one
// per print area when the sheet has them. Every cell goes through reg.
func WriteHTML(w io.Writer, wb *models.WorkbookData, reg *Registry) error {
	doc := documentView{BookName: wb.BookName}
	for _, sheet := range wb.Sheets {
		doc.Tables = append(doc.Tables, sheetTables(sheet, reg)...)
	}
	if err := documentTemplate.Execute(w, doc); err != nil {
		return NewRenderError("", "html", err)
	}
	return nil
}

func sheetTables(sheet models.SheetData, reg *Registry) []tableView {
	if len(sheet.PrintAreas) == 0 {
		minCol, maxCol := parser.ColumnBounds(sheet.Rows)
		area := models.PrintArea{R1: 1, C1: minCol, R2: lastRow(sheet.Rows), C2: maxCol}
		return []tableView{renderArea(sheet.Name, sheet.Rows, area, reg)}
	}

	tables := make([]tableView, 0, len(sheet.PrintAreas))
	for i, area := range sheet.PrintAreas {
		caption := sheet.Name + " (area " + strconv.Itoa(i+1) + ")"
		tables = append(tables, renderArea(caption, sheet.Rows, area, reg))
	}
	return tables
}

func renderArea(caption string, rows []models.CellRow, area models.PrintArea, reg *Registry) tableView {
	table := tableView{Caption: caption}
	for _, row := range rows {
		if !area.Contains(row.R, area.C1) {
			continue
		}
		view := rowView{R: row.R}
		for col := area.C1; col <= area.C2; col++ {
			view.Cells = append(view.Cells, reg.Render(row.C[strconv.Itoa(col)]))
		}
		table.Rows = append(table.Rows, view)
	}
	return table
}

func lastRow(rows []models.CellRow) int {
	if len(rows) == 0 {
		return 0
	}
	return rows[len(rows)-1].R
}
