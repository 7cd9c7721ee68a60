package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas []models.PrintArea
	}{
		{
			ref:       "Sheet1!$A$1:$D$10",
			wantSheet: "Sheet1",
			wantAreas: []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}},
		},
		{
			ref:       "'My Sheet'!$B$2:$C$3,'My Sheet'!$F$1",
			wantSheet: "My Sheet",
			wantAreas: []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}, {R1: 1, C1: 6, R2: 1, C2: 6}},
		},
		{
			ref:       "'Bob''s'!$D$4:$A$1",
			wantSheet: "Bob's",
			wantAreas: []models.PrintArea{{R1: 1, C1: 1, R2: 4, C2: 4}},
		},
		{
			ref:       "Sheet1!bogus",
			wantSheet: "Sheet1",
		},
		{
			ref: "$A$1:$B$2",
		},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		assert.Equal(t, tt.wantSheet, sheet, tt.ref)
		assert.Equal(t, tt.wantAreas, areas, tt.ref)
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$3",
		Scope:    "Sheet1",
	}))

	areas, err := ExtractPrintAreas(f)
	require.NoError(t, err)
	assert.Equal(t, map[string][]models.PrintArea{
		"Sheet1": {{R1: 1, C1: 1, R2: 3, C2: 2}},
	}, areas)
}
