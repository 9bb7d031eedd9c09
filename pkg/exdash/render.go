package exdash

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"

	"github.com/ukaji3/exdash-go/pkg/exdash/chart"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/stats"
)

// Dashboard is the rendered output: a 2x2 grid of histogram, box plot, bar
// chart and pie chart, plus an optional line plot figure.
type Dashboard struct {
	// Grid holds the four standard charts.
	Grid *chart.Figure
	// TimeSeries is the line plot; nil when no datetime column was selected.
	TimeSeries *chart.Figure
	// Data is what the charts were drawn from.
	Data models.DashboardData
	// DPI is the resolution used for raster output.
	DPI float64
}

// Figures returns the figures in display order.
func (d *Dashboard) Figures() []*chart.Figure {
	figs := []*chart.Figure{d.Grid}
	if d.TimeSeries != nil {
		figs = append(figs, d.TimeSeries)
	}
	return figs
}

// Save writes every figure to dir in the given format and returns the paths.
func (d *Dashboard) Save(dir string, format Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, fig := range d.Figures() {
		path, err := fig.Save(dir, string(format), d.DPI)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Render validates the column selection against tbl and draws the dashboard.
// A missing or mistyped column fails before any chart is built.
func Render(tbl *models.Table, sel models.Selection, opts RenderOptions) (*Dashboard, error) {
	opts = opts.withDefaults()

	cols, err := resolveColumns(tbl, sel)
	if err != nil {
		return nil, err
	}

	values := cols.numeric.Floats()
	data := summarize(cols, values, opts)
	data.Selection = sel
	opts.Logger.Debug("dashboard statistics",
		"values", data.Box.N,
		"categories", len(data.Bars),
		"slices", len(data.Pie),
		"points", len(data.Series))

	grid, err := drawGrid(data, values, sel, opts)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{Grid: grid, Data: data, DPI: opts.DPI}
	if dtName, ok := sel.DatetimeColumn(); ok && opts.ShouldIncludeLine(true) {
		p, err := chart.LinePlot(data.Series, sel.Numeric, dtName)
		if err != nil {
			return nil, fmt.Errorf("line plot: %w", err)
		}
		dash.TimeSeries, err = chart.NewFigure("timeseries", p.Title.Text,
			chart.Inches(opts.LineWidth), chart.Inches(opts.LineHeight), 1, 1, p)
		if err != nil {
			return nil, err
		}
	}
	return dash, nil
}

// selectedColumns holds the columns named by a Selection.
type selectedColumns struct {
	numeric     *models.Column
	categorical *models.Column
	datetime    *models.Column // nil when not selected
}

// resolveColumns looks up and type-checks each selected column.
func resolveColumns(tbl *models.Table, sel models.Selection) (*selectedColumns, error) {
	numeric, ok := tbl.Column(sel.Numeric)
	if !ok {
		return nil, NewColumnError(sel.Numeric, "numeric", ErrColumnNotFound)
	}
	if numeric.Kind != models.KindNumeric {
		return nil, NewColumnError(sel.Numeric, "numeric", fmt.Errorf("%w: got %s", ErrColumnType, numeric.Kind))
	}

	categorical, ok := tbl.Column(sel.Categorical)
	if !ok {
		return nil, NewColumnError(sel.Categorical, "categorical", ErrColumnNotFound)
	}

	cols := &selectedColumns{numeric: numeric, categorical: categorical}
	if name, ok := sel.DatetimeColumn(); ok {
		dt, ok := tbl.Column(name)
		if !ok {
			return nil, NewColumnError(name, "datetime", ErrColumnNotFound)
		}
		if dt.Kind != models.KindDatetime {
			return nil, NewColumnError(name, "datetime", fmt.Errorf("%w: got %s", ErrColumnType, dt.Kind))
		}
		cols.datetime = dt
	}
	return cols, nil
}

// summarize computes the statistics behind every chart.
func summarize(cols *selectedColumns, values []float64, opts RenderOptions) models.DashboardData {
	counts := stats.ValueCounts(cols.categorical.Labels())

	data := models.DashboardData{
		Histogram: stats.Histogram(values, opts.Bins),
		Box:       stats.Box(values),
		Bars:      stats.Top(counts, opts.BarTop),
		Pie:       stats.PieSlices(stats.Top(counts, opts.PieTop)),
	}
	if cols.datetime != nil {
		data.Series = stats.Series(cols.datetime, cols.numeric)
	}
	return data
}

// drawGrid builds the histogram, box plot, bar and pie charts in row-major order.
func drawGrid(data models.DashboardData, values []float64, sel models.Selection, opts RenderOptions) (*chart.Figure, error) {
	hist, err := chart.Histogram(data.Histogram, sel.Numeric)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	box, err := chart.BoxPlot(values, data.Box, sel.Numeric)
	if err != nil {
		return nil, fmt.Errorf("box plot: %w", err)
	}
	bars, err := chart.BarChart(data.Bars, sel.Categorical)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	pie, err := chart.PieChart(data.Pie, sel.Categorical)
	if err != nil {
		return nil, fmt.Errorf("pie chart: %w", err)
	}

	plots := []*plot.Plot{hist, box, bars, pie}
	return chart.NewFigure("dashboard", fmt.Sprintf("%s / %s", sel.Numeric, sel.Categorical),
		chart.Inches(opts.GridWidth), chart.Inches(opts.GridHeight), 2, 2, plots...)
}
