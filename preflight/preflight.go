// Package preflight validates conversion inputs before they are handed
// to the native converter, so obviously broken files fail with a useful
// message instead of an opaque pstoedit error code.
package preflight

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/flanksource/commons/logger"
)

// Result describes a checked input file.
type Result struct {
	Path      string `json:"path" yaml:"path"`
	IsPDF     bool   `json:"is_pdf" yaml:"is_pdf"`
	PageCount int    `json:"page_count,omitempty" yaml:"page_count,omitempty"`
}

// IsPDF reports whether path looks like a PDF by extension.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// Check validates the input file. PDF inputs are structurally validated
// and their page count read; PostScript inputs pass through unchecked,
// since only the interpreter can really judge them.
func Check(path string) (Result, error) {
	result := Result{Path: path}
	if !IsPDF(path) {
		logger.Debugf("preflight: %s is not a PDF, skipping validation", path)
		return result, nil
	}

	result.IsPDF = true
	if err := api.ValidateFile(path, nil); err != nil {
		return result, fmt.Errorf("preflight: %s is not a valid PDF: %w", path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return result, fmt.Errorf("preflight: cannot read page count of %s: %w", path, err)
	}
	result.PageCount = pages
	logger.Debugf("preflight: %s is a valid PDF with %d page(s)", path, pages)
	return result, nil
}
