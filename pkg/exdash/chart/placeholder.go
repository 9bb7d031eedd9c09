package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
)

// NoDataText is drawn in panels whose column has no usable values.
const NoDataText = "no data"

// Placeholder returns an axis-less plot showing title and NoDataText.
func Placeholder(title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	xys := plotter.XYs{{X: 0.5, Y: 0.5}}
	if err := annotate(p, xys, []string{NoDataText}, pieLabelSize, 0, text.XCenter, text.YCenter); err != nil {
		return nil, err
	}
	return p, nil
}
