package chart

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// BarChart draws one bar per category in the given order, labelled with its count.
func BarChart(counts []models.CategoryCount, column string) (*plot.Plot, error) {
	title := "Bar Chart of " + column
	if len(counts) == 0 {
		return Placeholder(title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = column
	p.Y.Label.Text = "Count"

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	xys := make(plotter.XYs, len(counts))
	labels := make([]string, len(counts))
	maxCount := 0
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Label
		xys[i].X = float64(i)
		xys[i].Y = float64(c.Count) + 0.5
		labels[i] = strconv.Itoa(c.Count)
		maxCount = max(maxCount, c.Count)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, err
	}
	bars.Color = coral
	bars.LineStyle.Color = color.Black
	p.Add(bars)

	if err := annotate(p, xys, labels, barLabelSize, 0, text.XCenter, text.YBottom); err != nil {
		return nil, err
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = Degrees(45)
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Y.Min = 0
	p.Y.Max = float64(maxCount)*1.15 + 1
	return p, nil
}
