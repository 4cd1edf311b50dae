package formatters

import (
	"fmt"

	"github.com/spf13/pflag"
)

// FormatOptions contains options for driver-list output.
type FormatOptions struct {
	Format  string
	NoColor bool
	Output  string

	// Format-specific boolean flags (mutually exclusive)
	JSON     bool
	YAML     bool
	CSV      bool
	Markdown bool
	Pretty   bool
}

// MergeOptions merges option sets left to right; later non-zero values
// win, and only one format-specific flag is kept.
func MergeOptions(opts ...FormatOptions) FormatOptions {
	merged := FormatOptions{}
	for _, opt := range opts {
		if opt.Format != "" {
			merged.Format = opt.Format
		}
		if opt.NoColor {
			merged.NoColor = true
		}
		if opt.Output != "" {
			merged.Output = opt.Output
		}
		if opt.JSON {
			merged.JSON = true
			continue // Only one format can be set
		}
		if opt.YAML {
			merged.YAML = true
			continue
		}
		if opt.CSV {
			merged.CSV = true
			continue
		}
		if opt.Markdown {
			merged.Markdown = true
			continue
		}
		if opt.Pretty {
			merged.Pretty = true
			continue
		}
	}
	return merged
}

// BindPFlags adds formatting flags to the provided pflag set (for cobra).
func BindPFlags(flags *pflag.FlagSet, options *FormatOptions) {
	flags.StringVar(&options.Format, "format", "pretty", "Output format: pretty, json, yaml, csv, markdown")
	flags.StringVar(&options.Output, "output", "", "Output file (optional, uses stdout if not specified)")
	flags.BoolVar(&options.NoColor, "no-color", false, "Disable colored output")

	// Format-specific flags (mutually exclusive)
	flags.BoolVar(&options.JSON, "json", false, "Output in JSON format")
	flags.BoolVar(&options.YAML, "yaml", false, "Output in YAML format")
	flags.BoolVar(&options.CSV, "csv", false, "Output in CSV format")
	flags.BoolVar(&options.Markdown, "markdown", false, "Output in Markdown format")
	flags.BoolVar(&options.Pretty, "pretty", false, "Output in pretty format (default)")
}

// ResolveFormat resolves the output format from format-specific flags.
func (options *FormatOptions) ResolveFormat() error {
	formatCount := 0
	selectedFormat := ""

	if options.JSON {
		formatCount++
		selectedFormat = "json"
	}
	if options.YAML {
		formatCount++
		selectedFormat = "yaml"
	}
	if options.CSV {
		formatCount++
		selectedFormat = "csv"
	}
	if options.Markdown {
		formatCount++
		selectedFormat = "markdown"
	}
	if options.Pretty {
		formatCount++
		selectedFormat = "pretty"
	}

	if formatCount > 1 {
		return fmt.Errorf("multiple format flags specified; please use only one format flag")
	}
	if formatCount == 1 {
		options.Format = selectedFormat
	}
	return nil
}
