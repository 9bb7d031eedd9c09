package chart

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// Histogram draws per-bin counts of column, each bar labelled with its count.
func Histogram(h models.HistogramData, column string) (*plot.Plot, error) {
	title := "Histogram of " + column
	if len(h.Counts) == 0 {
		return Placeholder(title)
	}
	if len(h.Edges) != len(h.Counts)+1 {
		return nil, fmt.Errorf("histogram: %d edges for %d bins", len(h.Edges), len(h.Counts))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"

	bins := make([]plotter.HistogramBin, len(h.Counts))
	xys := make(plotter.XYs, len(h.Counts))
	labels := make([]string, len(h.Counts))
	maxCount := 0
	for i, count := range h.Counts {
		bins[i] = plotter.HistogramBin{Min: h.Edges[i], Max: h.Edges[i+1], Weight: float64(count)}
		xys[i].X = (h.Edges[i] + h.Edges[i+1]) / 2
		xys[i].Y = float64(count) + 0.5
		labels[i] = strconv.Itoa(count)
		maxCount = max(maxCount, count)
	}

	bars := &plotter.Histogram{
		Bins:      bins,
		Width:     h.Edges[1] - h.Edges[0],
		FillColor: skyBlue,
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(bars)

	if err := annotate(p, xys, labels, annotationSize, Degrees(90), text.XLeft, text.YCenter); err != nil {
		return nil, err
	}
	p.Y.Min = 0
	p.Y.Max = float64(maxCount)*1.15 + 1
	return p, nil
}
