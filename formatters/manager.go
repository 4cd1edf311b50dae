// Package formatters renders pstoedit driver catalogs in the formats
// supported by the psconvert CLI: a styled terminal table, JSON, YAML,
// CSV and Markdown.
package formatters

import (
	"fmt"
	"os"

	"github.com/flanksource/pstoedit"
)

// FormatManager dispatches driver-list formatting to the format-specific
// formatters.
type FormatManager struct {
	jsonFormatter     *JSONFormatter
	yamlFormatter     *YAMLFormatter
	csvFormatter      *CSVFormatter
	markdownFormatter *MarkdownFormatter
	prettyFormatter   *PrettyFormatter
}

// NewFormatManager creates a new format manager with all formatters initialized.
func NewFormatManager() *FormatManager {
	return &FormatManager{
		jsonFormatter:     NewJSONFormatter(),
		yamlFormatter:     NewYAMLFormatter(),
		csvFormatter:      NewCSVFormatter(),
		markdownFormatter: NewMarkdownFormatter(),
		prettyFormatter:   NewPrettyFormatter(),
	}
}

// JSON renders the driver list as indented JSON.
func (f *FormatManager) JSON(drivers []pstoedit.DriverRecord) (string, error) {
	return f.jsonFormatter.Format(drivers)
}

// YAML renders the driver list as YAML.
func (f *FormatManager) YAML(drivers []pstoedit.DriverRecord) (string, error) {
	return f.yamlFormatter.Format(drivers)
}

// CSV renders the driver list as CSV with a header row.
func (f *FormatManager) CSV(drivers []pstoedit.DriverRecord) (string, error) {
	return f.csvFormatter.Format(drivers)
}

// Markdown renders the driver list as a Markdown table.
func (f *FormatManager) Markdown(drivers []pstoedit.DriverRecord) (string, error) {
	return f.markdownFormatter.Format(drivers)
}

// Pretty renders the driver list as a styled terminal table.
func (f *FormatManager) Pretty(drivers []pstoedit.DriverRecord) (string, error) {
	return f.prettyFormatter.Format(drivers)
}

// Format dispatches to the formatter named by format.
func (f *FormatManager) Format(format string, drivers []pstoedit.DriverRecord) (string, error) {
	switch format {
	case "json":
		return f.JSON(drivers)
	case "yaml", "yml":
		return f.YAML(drivers)
	case "csv":
		return f.CSV(drivers)
	case "markdown", "md":
		return f.Markdown(drivers)
	case "pretty", "":
		return f.Pretty(drivers)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatWithOptions resolves the format from opts and applies NoColor.
func (f *FormatManager) FormatWithOptions(opts FormatOptions, drivers []pstoedit.DriverRecord) (string, error) {
	if err := opts.ResolveFormat(); err != nil {
		return "", err
	}
	f.prettyFormatter.NoColor = opts.NoColor
	return f.Format(opts.Format, drivers)
}

// FormatToFile writes the formatted driver list to opts.Output, or to
// stdout when no output file is set.
func (f *FormatManager) FormatToFile(opts FormatOptions, drivers []pstoedit.DriverRecord) error {
	result, err := f.FormatWithOptions(opts, drivers)
	if err != nil {
		return err
	}
	if opts.Output == "" {
		_, err = fmt.Fprintln(os.Stdout, result)
		return err
	}
	return os.WriteFile(opts.Output, []byte(result+"\n"), 0o644)
}
