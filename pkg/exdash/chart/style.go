package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var (
	skyBlue  = color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xb3} // 0.7 alpha
	coral    = color.NRGBA{R: 0xff, G: 0x7f, B: 0x50, A: 0xff}
	teal     = color.NRGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xff}
	gridGray = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x4d} // 0.3 alpha
)

const (
	annotationSize = 8
	barLabelSize   = 9
	pieLabelSize   = 10
)

// annotate adds a text label at every point, all sharing the same style.
func annotate(p *plot.Plot, xys plotter.XYs, labels []string, size vg.Length, rotation float64, xAlign text.XAlignment, yAlign text.YAlignment) error {
	if len(xys) == 0 {
		return nil
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = size
		l.TextStyle[i].Rotation = rotation
		l.TextStyle[i].XAlign = xAlign
		l.TextStyle[i].YAlign = yAlign
	}
	p.Add(l)
	return nil
}
