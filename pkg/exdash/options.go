// Package exdash loads spreadsheets and renders statistical dashboards.
package exdash

import (
	"log/slog"

	"github.com/ukaji3/exdash-go/pkg/exdash/chart"
	"github.com/ukaji3/exdash-go/pkg/exdash/stats"
)

// Format is a figure output format.
type Format string

const (
	// FormatPNG writes raster PNG images.
	FormatPNG Format = "png"
	// FormatSVG writes vector SVG images.
	FormatSVG Format = "svg"
	// FormatPDF writes PDF documents.
	FormatPDF Format = "pdf"
	// FormatJPEG writes raster JPEG images.
	FormatJPEG Format = "jpg"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatPNG, FormatSVG, FormatPDF, FormatJPEG:
		return Format(s), true
	case "jpeg":
		return FormatJPEG, true
	}
	return "", false
}

// LoadOptions configures spreadsheet loading.
type LoadOptions struct {
	// Sheet is the sheet to read. Empty means the first sheet.
	Sheet string
	// Range restricts the data region, e.g. "A1:F200". Empty means the
	// bounding box of non-empty cells; "print_area" uses the sheet's print area.
	Range string
	// Password opens encrypted workbooks.
	Password string
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultLoadOptions returns default loading options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

func (o LoadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// RenderOptions configures dashboard rendering.
type RenderOptions struct {
	// Bins is the number of histogram bins.
	Bins int
	// BarTop and PieTop cap the categories shown by the bar and pie charts.
	BarTop int
	PieTop int
	// GridWidth and GridHeight size the 2x2 figure, in inches.
	GridWidth  float64
	GridHeight float64
	// LineWidth and LineHeight size the line plot figure, in inches.
	LineWidth  float64
	LineHeight float64
	// DPI is the raster resolution.
	DPI float64
	// IncludeLine specifies whether to build the line plot.
	// If nil, the line plot is built whenever a datetime column is selected.
	IncludeLine *bool
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Bins:       stats.DefaultBins,
		BarTop:     stats.DefaultBarTop,
		PieTop:     stats.DefaultPieTop,
		GridWidth:  14,
		GridHeight: 10,
		LineWidth:  12,
		LineHeight: 5,
		DPI:        chart.DefaultDPI,
	}
}

// ShouldIncludeLine returns whether to build the line plot.
func (o RenderOptions) ShouldIncludeLine(hasDatetime bool) bool {
	if o.IncludeLine != nil {
		return *o.IncludeLine && hasDatetime
	}
	return hasDatetime
}

// withDefaults fills zero fields from DefaultRenderOptions.
func (o RenderOptions) withDefaults() RenderOptions {
	d := DefaultRenderOptions()
	if o.Bins <= 0 {
		o.Bins = d.Bins
	}
	if o.BarTop <= 0 {
		o.BarTop = d.BarTop
	}
	if o.PieTop <= 0 {
		o.PieTop = d.PieTop
	}
	if o.GridWidth <= 0 || o.GridHeight <= 0 {
		o.GridWidth, o.GridHeight = d.GridWidth, d.GridHeight
	}
	if o.LineWidth <= 0 || o.LineHeight <= 0 {
		o.LineWidth, o.LineHeight = d.LineWidth, d.LineHeight
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
