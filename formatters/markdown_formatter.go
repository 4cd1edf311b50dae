package formatters

import (
	"fmt"
	"strings"

	"github.com/flanksource/pstoedit"
)

// MarkdownFormatter handles Markdown formatting
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new Markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format formats the driver list as a Markdown table
func (f *MarkdownFormatter) Format(drivers []pstoedit.DriverRecord) (string, error) {
	var sb strings.Builder

	sb.WriteString("| Format | Extension | Explanation | Capabilities |\n")
	sb.WriteString("|--------|-----------|-------------|--------------|\n")

	for _, d := range drivers {
		explanation := d.Explanation
		if d.AdditionalInfo != "" {
			explanation = fmt.Sprintf("%s (%s)", explanation, d.AdditionalInfo)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			escapeCell(d.SymbolicName),
			escapeCell(d.Extension),
			escapeCell(explanation),
			strings.Join(d.Capabilities(), ", "),
		)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// escapeCell escapes characters that would break a Markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
