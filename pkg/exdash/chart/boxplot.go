package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// BoxPlot draws a single box-and-whisker of values using summary for the box,
// whiskers and outliers.
func BoxPlot(values []float64, summary models.BoxSummary, column string) (*plot.Plot, error) {
	title := "Box Plot of " + column
	if summary.N == 0 || len(values) == 0 {
		return Placeholder(title)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Values"

	box, err := plotter.NewBoxPlot(vg.Points(60), 0, plotter.Values(values))
	if err != nil {
		return nil, err
	}

	box.Median = summary.Median
	box.Quartile1 = summary.Q1
	box.Quartile3 = summary.Q3
	box.AdjLow = summary.WhiskerLo
	box.AdjHigh = summary.WhiskerHi
	box.Min = summary.Min
	box.Max = summary.Max
	box.Outside = box.Outside[:0]
	for i, v := range box.Values {
		if v < summary.WhiskerLo || v > summary.WhiskerHi {
			box.Outside = append(box.Outside, i)
		}
	}
	box.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(box)
	p.NominalX("1")
	return p, nil
}
