package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

const (
	// pieStartAngle is the angle of the first wedge's leading edge (top).
	pieStartAngle = math.Pi / 2
	// Label and percentage distances in multiples of the radius.
	pieLabelDistance   = 1.1
	piePercentDistance = 0.6
)

// Wedge is the angular extent of one pie slice, in radians.
// Slices run clockwise, so End < Start.
type Wedge struct {
	Start float64
	End   float64
}

// Mid returns the angle halfway through the wedge.
func (w Wedge) Mid() float64 {
	return (w.Start + w.End) / 2
}

// Wedges lays slices out clockwise from the top, sized by their share.
func Wedges(slices []models.PieSlice) []Wedge {
	total := 0
	for _, s := range slices {
		total += s.Count
	}
	wedges := make([]Wedge, len(slices))
	angle := pieStartAngle
	for i, s := range slices {
		sweep := 0.0
		if total > 0 {
			sweep = 2 * math.Pi * float64(s.Count) / float64(total)
		}
		wedges[i] = Wedge{Start: angle, End: angle - sweep}
		angle -= sweep
	}
	return wedges
}

// PercentLabel formats a slice share to one decimal place.
func PercentLabel(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// pieChart implements plot.Plotter. It draws in canvas coordinates
// and ignores the plot axes.
type pieChart struct {
	slices []models.PieSlice
	wedges []Wedge
	colors []color.Color
	edge   color.Color
}

// Plot implements the plot.Plotter interface.
func (pc *pieChart) Plot(c draw.Canvas, plt *plot.Plot) {
	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y) / 2 / vg.Length(pieLabelDistance+0.25)

	for i, w := range pc.wedges {
		if w.Start == w.End {
			continue
		}
		var path vg.Path
		path.Move(center)
		path.Arc(center, radius, w.Start, w.End-w.Start)
		path.Close()

		c.SetColor(pc.colors[i])
		c.Fill(path)
		c.SetLineWidth(vg.Points(1))
		c.SetColor(pc.edge)
		c.Stroke(path)
	}

	sty := plt.Title.TextStyle
	sty.Font.Size = vg.Points(pieLabelSize)
	sty.YAlign = text.YCenter
	for i, w := range pc.wedges {
		mid := w.Mid()
		cos, sin := vg.Length(math.Cos(mid)), vg.Length(math.Sin(mid))

		label := sty
		label.XAlign = text.XLeft
		if cos < 0 {
			label.XAlign = text.XRight
		}
		at := vg.Point{X: center.X + radius*pieLabelDistance*cos, Y: center.Y + radius*pieLabelDistance*sin}
		c.FillText(label, at, pc.slices[i].Label)

		pct := sty
		pct.XAlign = text.XCenter
		at = vg.Point{X: center.X + radius*piePercentDistance*cos, Y: center.Y + radius*piePercentDistance*sin}
		c.FillText(pct, at, PercentLabel(pc.slices[i].Percent))
	}
}

// DataRange implements the plot.DataRanger interface.
func (pc *pieChart) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// PieChart draws one wedge per slice starting at the top and proceeding
// clockwise, labelled with the category and its percentage.
func PieChart(slices []models.PieSlice, column string) (*plot.Plot, error) {
	title := "Pie Chart of " + column
	if len(slices) == 0 {
		return Placeholder(title)
	}

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	colors := make([]color.Color, len(slices))
	for i := range slices {
		colors[i] = plotutil.Color(i)
	}
	p.Add(&pieChart{
		slices: slices,
		wedges: Wedges(slices),
		colors: colors,
		edge:   color.White,
	})
	return p, nil
}
