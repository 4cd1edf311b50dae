package formatters

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
	"golang.org/x/term"

	"github.com/flanksource/pstoedit"
)

// PrettyFormatter renders the driver list as a styled terminal table.
type PrettyFormatter struct {
	NoColor  bool
	MaxWidth int
}

// NewPrettyFormatter creates a new formatter, picking up the terminal
// width and color support automatically.
func NewPrettyFormatter() *PrettyFormatter {
	f := &PrettyFormatter{MaxWidth: 120}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		f.MaxWidth = w
	}
	if termenv.EnvNoColor() {
		f.NoColor = true
	}
	return f
}

const (
	supported   = "✓"
	unsupported = "·"
)

func glyph(b bool) string {
	if b {
		return supported
	}
	return unsupported
}

// Format renders drivers as a table with one row per driver and one
// column per capability.
func (f *PrettyFormatter) Format(drivers []pstoedit.DriverRecord) (string, error) {
	headerStyle := lipgloss.NewStyle().Bold(true)
	capStyle := lipgloss.NewStyle().Align(lipgloss.Center)
	borderStyle := lipgloss.NewStyle()
	if !f.NoColor {
		headerStyle = headerStyle.Foreground(lipgloss.Color("#8A2BE2"))
		borderStyle = borderStyle.Foreground(lipgloss.Color("#808080"))
	}

	headers := []string{"FORMAT", "EXT", "EXPLANATION", "SUB", "CRV", "MRG", "TXT", "IMG", "PGS"}
	if pstoedit.FormatGroupSupported {
		headers = append(headers, "GRP")
	}

	rows := lo.Map(drivers, func(d pstoedit.DriverRecord, _ int) []string {
		row := []string{
			d.SymbolicName,
			d.Extension,
			lo.Ellipsis(d.Explanation, f.explanationWidth()),
			glyph(d.Subpaths),
			glyph(d.Curveto),
			glyph(d.Merging),
			glyph(d.Text),
			glyph(d.Images),
			glyph(d.MultiplePages),
		}
		if pstoedit.FormatGroupSupported {
			group := ""
			if d.FormatGroup != nil {
				group = strconv.Itoa(*d.FormatGroup)
			}
			row = append(row, group)
		}
		return row
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= 3 {
				return capStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render(), nil
}

// explanationWidth leaves room for the fixed-width columns and borders.
func (f *PrettyFormatter) explanationWidth() int {
	w := f.MaxWidth - 60
	if w < 20 {
		return 20
	}
	return w
}
