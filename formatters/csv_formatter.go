package formatters

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/flanksource/pstoedit"
)

// CSVFormatter handles CSV formatting
type CSVFormatter struct {
	Separator rune
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{
		Separator: ',',
	}
}

var csvHeader = []string{
	"symbolic_name", "extension", "explanation", "additional_info",
	"subpaths", "curveto", "merging", "text", "images", "multiple_pages",
}

// Format formats the driver list as CSV with a header row
func (f *CSVFormatter) Format(drivers []pstoedit.DriverRecord) (string, error) {
	var output strings.Builder
	writer := csv.NewWriter(&output)
	writer.Comma = f.Separator

	header := csvHeader
	if pstoedit.FormatGroupSupported {
		header = append(append([]string(nil), csvHeader...), "format_group")
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, d := range drivers {
		row := []string{
			d.SymbolicName,
			d.Extension,
			d.Explanation,
			d.AdditionalInfo,
			strconv.FormatBool(d.Subpaths),
			strconv.FormatBool(d.Curveto),
			strconv.FormatBool(d.Merging),
			strconv.FormatBool(d.Text),
			strconv.FormatBool(d.Images),
			strconv.FormatBool(d.MultiplePages),
		}
		if pstoedit.FormatGroupSupported {
			group := ""
			if d.FormatGroup != nil {
				group = strconv.Itoa(*d.FormatGroup)
			}
			row = append(row, group)
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(output.String(), "\n"), nil
}
