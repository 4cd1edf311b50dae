package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"

	"github.com/flanksource/pstoedit"
	"github.com/flanksource/pstoedit/formatters"
	"github.com/flanksource/pstoedit/preflight"
	"github.com/flanksource/pstoedit/preview"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var logFlags logger.Flags

	rootCmd := &cobra.Command{
		Use:   "psconvert",
		Short: "Convert PostScript and PDF documents to vector formats using pstoedit",
		Long: `psconvert is a CLI frontend for the pstoedit bindings. It converts
PostScript and PDF documents into the vector formats provided by pstoedit's
output drivers (SVG, TikZ, DXF, ...) and can list the drivers available in
the installed pstoedit library.`,
		Example: `  psconvert convert -f svg input.ps output.svg
  psconvert convert -f latex2e --gs /usr/local/bin/gs input.pdf output.tex
  psconvert drivers --native --format json
  psconvert gstest`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Configure(logFlags)
			if err := loadConfig(configFile); err != nil {
				return err
			}
			// version only reports compile-time facts and should
			// work against a mismatched library.
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return pstoedit.Init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default ~/.psconvert.yaml)")
	flags.CountVarP(&logFlags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&logFlags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&logFlags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")
	flags.BoolVar(&logFlags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newDriversCommand())
	rootCmd.AddCommand(newGsTestCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newConvertCommand() *cobra.Command {
	var gs string
	var driver string
	var noPreflight bool
	var previewFile string
	var previewWidth int

	cmd := &cobra.Command{
		Use:   "convert -f FORMAT INPUT [OUTPUT] [-- PSTOEDIT_ARGS...]",
		Short: "Convert a PostScript or PDF document to another vector format",
		Long: `Convert runs a single pstoedit conversion. Arguments after -- are
passed through to pstoedit unchanged, e.g.:

  psconvert convert -f svg input.ps output.svg -- -ssp -mergetext`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positional := args
			var passthrough []string
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				positional, passthrough = args[:dash], args[dash:]
			}
			if len(positional) < 1 || len(positional) > 2 {
				return fmt.Errorf("expected INPUT [OUTPUT], got %d arguments", len(positional))
			}

			input := positional[0]
			var output string
			if len(positional) > 1 {
				output = positional[1]
			} else {
				output = defaultOutput(input, driver)
				logger.Infof("no output file given, using %s", output)
			}
			if gs == "" {
				gs = config.Gs
			}

			if !noPreflight {
				if result, err := preflight.Check(input); err != nil {
					return err
				} else if result.IsPDF {
					logger.Infof("%s: valid PDF, %d page(s)", input, result.PageCount)
				}
			}

			command := pstoedit.NewCommand()
			if err := command.Args("-f", driver); err != nil {
				return err
			}
			if err := command.Args(passthrough...); err != nil {
				return err
			}
			if err := command.Args(input, output); err != nil {
				return err
			}
			if gs != "" {
				if err := command.Gs(gs); err != nil {
					return err
				}
			}

			logger.Debugf("running pstoedit with argv %v", command.Argv())
			if err := command.Run(); err != nil {
				return err
			}
			logger.Infof("converted %s to %s", input, output)

			if previewFile != "" {
				if driver != "svg" && !strings.HasSuffix(output, ".svg") {
					return fmt.Errorf("--preview requires an SVG output, got driver %q", driver)
				}
				return preview.Render(output, previewFile, preview.Options{Width: previewWidth})
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&driver, "driver", "f", "", "Output driver (symbolic name, see 'psconvert drivers')")
	cmd.Flags().StringVar(&gs, "gs", "", "Path to the ghostscript executable, bypassing auto-detection")
	cmd.Flags().BoolVar(&noPreflight, "no-preflight", false, "Skip PDF input validation")
	cmd.Flags().StringVar(&previewFile, "preview", "", "Write a PNG preview of an SVG result to this file")
	cmd.Flags().IntVar(&previewWidth, "preview-width", 0, "Preview width in pixels (0 keeps the SVG size)")
	_ = cmd.MarkFlagRequired("driver")

	return cmd
}

func newDriversCommand() *cobra.Command {
	var nativeOnly bool
	var options formatters.FormatOptions

	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "List the output drivers of the installed pstoedit library",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags win over config; the format flag's default only
			// counts when the user actually set it.
			if !cmd.Flags().Changed("format") {
				options.Format = ""
			}
			options = formatters.MergeOptions(
				formatters.FormatOptions{Format: config.Format, NoColor: config.NoColor},
				options,
			)

			var info *pstoedit.DriverInfo
			var err error
			if nativeOnly {
				info, err = pstoedit.NativeDrivers()
			} else {
				info, err = pstoedit.Drivers()
			}
			if err != nil {
				return err
			}
			defer info.Close()

			records, err := info.Records()
			if err != nil {
				return err
			}
			return formatters.NewFormatManager().FormatToFile(options, records)
		},
	}

	cmd.Flags().BoolVar(&nativeOnly, "native", false, "Only list drivers built into pstoedit itself")
	formatters.BindPFlags(cmd.Flags(), &options)

	return cmd
}

func newGsTestCommand() *cobra.Command {
	var gs string

	cmd := &cobra.Command{
		Use:   "gstest",
		Short: "Run pstoedit's internal ghostscript self-check",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gs == "" {
				gs = config.Gs
			}
			command := pstoedit.NewCommand()
			if err := command.Arg(pstoedit.GsTest); err != nil {
				return err
			}
			if gs != "" {
				if err := command.Gs(gs); err != nil {
					return err
				}
			}
			if err := command.Run(); err != nil {
				return err
			}
			fmt.Println("ghostscript self-check passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&gs, "gs", "", "Path to the ghostscript executable, bypassing auto-detection")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and pstoedit interface information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("psconvert %s (commit %s, built %s)\n", version, commit, date)
			fmt.Printf("pstoedit plainC interface version: %d\n", pstoedit.DLLVersion)
			fmt.Printf("format groups supported: %t\n", pstoedit.FormatGroupSupported)
		},
	}
}

// defaultOutput derives an output file name from the input and the
// driver name, e.g. input.ps + svg -> input.svg.
func defaultOutput(input, driver string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + driver
}
