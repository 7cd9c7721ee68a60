package parser

import (
	"strings"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses references such as
// 'My Sheet'!$A$1:$D$10,'My Sheet'!$F$1 into the sheet name and its areas.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var (
		sheetName string
		areas     []models.PrintArea
	)

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		if sheetName == "" {
			sheetName = unquoteSheetName(part[:idx])
		}
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

func unquoteSheetName(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "''", "'")
}

// parseRangeToArea parses $A$1:$D$10 or a single cell such as $B$2.
func parseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	start, end, found := strings.Cut(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if !found {
		end = start
	}

	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.PrintArea{}, false
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}

	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
