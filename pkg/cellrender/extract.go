package cellrender

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"k8s.io/klog/v2"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/parser"
)

// Extract reads the cells of the sheets selected by opts from an xlsx file.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	return ExtractFile(f, filepath.Base(path), opts)
}

// ExtractFile reads cells from an already opened workbook.
func ExtractFile(f *excelize.File, bookName string, opts Options) (*models.WorkbookData, error) {
	sheetNames, err := selectSheets(f.GetSheetList(), opts.Sheets)
	if err != nil {
		return nil, err
	}

	var printAreas map[string][]models.PrintArea
	if opts.ShouldIncludePrintAreas() {
		printAreas, err = parser.ExtractPrintAreas(f)
		if err != nil {
			return nil, NewRenderError("", "print_areas", err)
		}
	}

	wb := &models.WorkbookData{BookName: bookName}
	for _, sheetName := range sheetNames {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, NewRenderError(sheetName, "cells", err)
		}
		sheet := models.SheetData{
			Name:       sheetName,
			Rows:       rows,
			PrintAreas: printAreas[sheetName],
		}
		if opts.ShouldIncludePrintAreas() && len(sheet.PrintAreas) == 0 {
			klog.Warningf("sheet %q has no print area, rendering all cells", sheetName)
		}
		klog.V(2).Infof("extracted %d rows from sheet %q", len(rows), sheetName)
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// selectSheets returns wanted in workbook order, or every sheet when wanted is empty.
func selectSheets(available, wanted []string) ([]string, error) {
	if len(wanted) == 0 {
		return available, nil
	}

	index := make(map[string]bool, len(available))
	for _, name := range available {
		index[name] = true
	}
	want := make(map[string]bool, len(wanted))
	for _, name := range wanted {
		if !index[name] {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
		want[name] = true
	}

	var selected []string
	for _, name := range available {
		if want[name] {
			selected = append(selected, name)
		}
	}
	return selected, nil
}
