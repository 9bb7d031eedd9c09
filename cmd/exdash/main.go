// Package main provides the CLI entry point for exdash-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/exdash-go/pkg/exdash"
	"github.com/ukaji3/exdash-go/pkg/exdash/viewer"
)

var (
	configPath  string
	sheet       string
	cellRange   string
	password    string
	numericCol  string
	categoryCol string
	datetimeCol string
	outputDir   string
	format      string
	noShow      bool
	width       float64
	height      float64
	dpi         float64
	bins        int
	barTop      int
	pieTop      int
	verbose     bool
)

func main() {
	rootCmd := newRootCmd(viewer.Window{})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(display viewer.Displayer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exdash [input.xlsx]",
		Short: "Render a statistical dashboard from a spreadsheet",
		Long: `exdash-go loads a spreadsheet and draws a histogram, box plot, bar chart
and pie chart of the selected columns, plus a line plot over time when a
datetime column is given.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, display)
		},
	}

	addLoadFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	flags := rootCmd.Flags()
	flags.StringVarP(&numericCol, "numeric", "n", "", "Numeric column (histogram, box plot, line plot)")
	flags.StringVarP(&categoryCol, "categorical", "c", "", "Categorical column (bar and pie charts)")
	flags.StringVarP(&datetimeCol, "datetime", "d", "", "Datetime column for the line plot (optional)")
	flags.StringVarP(&outputDir, "output", "o", "", "Directory to save figures to")
	flags.StringVar(&format, "format", string(exdash.FormatPNG), "Figure format: png, svg, pdf, jpg")
	flags.BoolVar(&noShow, "no-show", false, "Do not open the viewer")
	flags.Float64Var(&width, "width", 0, "Dashboard width in inches (default 14)")
	flags.Float64Var(&height, "height", 0, "Dashboard height in inches (default 10)")
	flags.Float64Var(&dpi, "dpi", 0, "Raster resolution (default 96)")
	flags.IntVar(&bins, "bins", 0, "Histogram bins (default 30)")
	flags.IntVar(&barTop, "bar-top", 0, "Categories in the bar chart (default 10)")
	flags.IntVar(&pieTop, "pie-top", 0, "Categories in the pie chart (default 8)")

	rootCmd.AddCommand(newColumnsCmd())
	return rootCmd
}

func addLoadFlags(flags *pflag.FlagSet) {
	flags.StringVar(&sheet, "sheet", "", "Sheet to read (default: first sheet)")
	flags.StringVar(&cellRange, "range", "", "Data range, e.g. A1:F200, or print_area")
	flags.StringVar(&password, "password", "", "Password of an encrypted workbook")
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns [input.xlsx]",
		Short: "List the columns and inferred types of a spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runColumns,
	}
}

func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// resolveConfig merges the config file with flags set on the command line.
// Flags win over the file; the file wins over defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*exdash.Config, error) {
	cfg := &exdash.Config{}
	if configPath != "" {
		loaded, err := exdash.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input file given")
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet = sheet
	}
	if flags.Changed("range") {
		cfg.Range = cellRange
	}
	if flags.Changed("password") {
		cfg.Password = password
	}
	if flags.Lookup("numeric") == nil {
		return cfg, nil
	}

	if flags.Changed("numeric") {
		cfg.Columns.Numeric = numericCol
	}
	if flags.Changed("categorical") {
		cfg.Columns.Categorical = categoryCol
	}
	if flags.Changed("datetime") {
		cfg.Columns.Datetime = datetimeCol
	}
	if flags.Changed("output") {
		cfg.Output.Dir = outputDir
	}
	if flags.Changed("format") || cfg.Output.Format == "" {
		cfg.Output.Format = format
	}
	if flags.Changed("no-show") {
		show := !noShow
		cfg.Output.Show = &show
	}
	if flags.Changed("dpi") {
		cfg.Output.DPI = dpi
	}
	if flags.Changed("width") {
		cfg.Charts.GridWidth = width
	}
	if flags.Changed("height") {
		cfg.Charts.GridHeight = height
	}
	if flags.Changed("bins") {
		cfg.Charts.Bins = bins
	}
	if flags.Changed("bar-top") {
		cfg.Charts.BarTop = barTop
	}
	if flags.Changed("pie-top") {
		cfg.Charts.PieTop = pieTop
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string, display viewer.Displayer) error {
	logger := setupLogger()

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sel := cfg.Selection()
	if sel.Numeric == "" || sel.Categorical == "" {
		return fmt.Errorf("both --numeric and --categorical columns are required")
	}

	outFormat, ok := exdash.ParseFormat(cfg.Output.Format)
	if !ok {
		return fmt.Errorf("invalid format: %s (must be png, svg, pdf or jpg)", cfg.Output.Format)
	}

	// Load data
	loadOpts := cfg.LoadOptions()
	loadOpts.Logger = logger
	tbl, err := exdash.Load(cfg.Input, loadOpts)
	if err != nil {
		return fmt.Errorf("loading failed: %w", err)
	}
	defer tbl.Release()

	// Render charts
	renderOpts := cfg.RenderOptions()
	renderOpts.Logger = logger
	dash, err := exdash.Render(tbl, sel, renderOpts)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	// Write figures
	if cfg.Output.Dir != "" {
		paths, err := dash.Save(cfg.Output.Dir, outFormat)
		if err != nil {
			return fmt.Errorf("failed to write figures: %w", err)
		}
		for _, p := range paths {
			logger.Info("saved figure", "path", p)
		}
	}

	// Show figures
	if cfg.ShouldShow() {
		var items []viewer.Item
		for _, fig := range dash.Figures() {
			items = append(items, viewer.Item{Title: fig.Title, Figure: fig})
		}
		if err := display.Display(items); err != nil {
			return fmt.Errorf("display failed: %w", err)
		}
	}

	return nil
}

func runColumns(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	loadOpts := cfg.LoadOptions()
	loadOpts.Logger = logger
	tbl, err := exdash.Load(cfg.Input, loadOpts)
	if err != nil {
		return fmt.Errorf("loading failed: %w", err)
	}
	defer tbl.Release()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tTYPE\tMISSING")
	for _, col := range tbl.Columns() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", col.Name, col.Kind, col.NullCount())
	}
	return w.Flush()
}
