package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// TimeFormat is the layout of the line plot's time tick labels.
const TimeFormat = "2006-01-02"

// LinePlot draws values over time as a connected line with point markers,
// each point labelled with its value rounded to an integer.
func LinePlot(points []models.SeriesPoint, valueColumn, timeColumn string) (*plot.Plot, error) {
	title := fmt.Sprintf("%s over %s", valueColumn, timeColumn)
	if len(points) == 0 {
		return Placeholder(title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = timeColumn
	p.Y.Label.Text = valueColumn

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridGray
	grid.Horizontal.Color = gridGray
	p.Add(grid)

	xys := make(plotter.XYs, len(points))
	labels := make([]string, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.T.Unix()) + float64(pt.T.Nanosecond())/1e9
		xys[i].Y = pt.V
		labels[i] = fmt.Sprintf("%.0f", pt.V)
	}

	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = teal
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	marks.GlyphStyle.Radius = vg.Points(3)
	marks.GlyphStyle.Color = teal
	p.Add(line, marks)

	if err := annotate(p, xys, labels, annotationSize, Degrees(45), text.XCenter, text.YBottom); err != nil {
		return nil, err
	}

	p.X.Tick.Marker = plot.TimeTicks{Format: TimeFormat}
	p.X.Tick.Label.Rotation = Degrees(45)
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}
