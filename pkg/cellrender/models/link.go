package models

import "html/template"

// LinkDescriptor is a decoded {"href": ..., "label": ...} cell.
type LinkDescriptor struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// RenderFunc renders a cell value as a trusted HTML fragment.
// It returns false when it does not apply to the value.
type RenderFunc func(CellValue) (template.HTML, bool)
