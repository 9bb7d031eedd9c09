package chart

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a grid of plots drawn onto one canvas.
type Figure struct {
	// Name is the file stem used when the figure is saved.
	Name string
	// Title is the display title.
	Title string
	// Width and Height are the figure size.
	Width  vg.Length
	Height vg.Length
	// Rows and Cols define the grid; Plots is row-major with Rows*Cols entries.
	Rows  int
	Cols  int
	Plots []*plot.Plot
}

// NewFigure creates a figure holding a grid of plots.
func NewFigure(name, title string, width, height vg.Length, rows, cols int, plots ...*plot.Plot) (*Figure, error) {
	if rows <= 0 || cols <= 0 || len(plots) != rows*cols {
		return nil, fmt.Errorf("figure %s: %d plots do not fill a %dx%d grid", name, len(plots), rows, cols)
	}
	return &Figure{
		Name:   name,
		Title:  title,
		Width:  width,
		Height: height,
		Rows:   rows,
		Cols:   cols,
		Plots:  plots,
	}, nil
}

// Draw draws every plot of the figure onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	if len(f.Plots) == 1 {
		f.Plots[0].Draw(dc)
		return
	}

	grid := make([][]*plot.Plot, f.Rows)
	for r := range grid {
		grid[r] = f.Plots[r*f.Cols : (r+1)*f.Cols]
	}

	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(8),
		PadX:      vg.Points(24),
		PadY:      vg.Points(24),
	}

	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c].Draw(canvases[r][c])
		}
	}
}

// Image rasterises the figure at the given DPI on a white background.
func (f *Figure) Image(dpi float64) image.Image {
	c := f.raster(dpi)
	return c.Image()
}

func (f *Figure) raster(dpi float64) *vgimg.Canvas {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(int(dpi)),
		vgimg.UseBackgroundColor(color.White),
	)
	f.Draw(draw.New(c))
	return c
}

// WriteTo encodes the figure in the given format (png, jpg, tiff, svg, pdf, eps).
func (f *Figure) WriteTo(w io.Writer, format string, dpi float64) (int64, error) {
	switch format = strings.ToLower(format); format {
	case "png":
		return vgimg.PngCanvas{Canvas: f.raster(dpi)}.WriteTo(w)
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: f.raster(dpi)}.WriteTo(w)
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: f.raster(dpi)}.WriteTo(w)
	}

	cw, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(cw))
	return cw.WriteTo(w)
}

// Save writes the figure to dir as <Name>.<format> and returns the file path.
func (f *Figure) Save(dir, format string, dpi float64) (string, error) {
	path := filepath.Join(dir, f.Name+"."+strings.ToLower(format))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := f.WriteTo(file, format, dpi); err != nil {
		file.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}
