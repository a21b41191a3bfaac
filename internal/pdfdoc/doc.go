// Package pdfdoc loads a tender PDF and exposes its raw text and tables.
package pdfdoc

import "time"

// Table is a grid of cell strings, one slice per row.
type Table [][]string

// Document is the raw material the field extractor works on.
type Document struct {
	Text     string
	Pages    int
	Tables   []Table
	Method   string // constants.MethodPDFText | constants.MethodPDFTool
	Duration time.Duration
	Warnings []string
}
