package cellrender

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyName indicates a renderer was registered without a name.
var ErrEmptyName = errors.New("renderer name is empty")

// ErrNilRenderer indicates a nil renderer function was registered.
var ErrNilRenderer = errors.New("renderer is nil")

// ErrDuplicateRenderer indicates a renderer name is already registered.
var ErrDuplicateRenderer = errors.New("renderer already registered")

// ErrUnknownRenderer indicates a configured renderer name has no implementation.
var ErrUnknownRenderer = errors.New("unknown renderer")

// RenderError represents an error while reading or rendering one sheet.
type RenderError struct {
	SheetName string
	Component string // "cells", "print_areas", "html"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(sheetName, component string, err error) *RenderError {
	return &RenderError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
