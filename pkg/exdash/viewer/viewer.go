// Package viewer displays rendered figures in desktop windows.
package viewer

import (
	"errors"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// AppID identifies the viewer application to the desktop environment.
const AppID = "io.github.ukaji3.exdash"

// Figure is something that can be rasterised for display.
type Figure interface {
	Image(dpi float64) image.Image
}

// Item is one window's content.
type Item struct {
	Title  string
	Figure Figure
}

// Displayer shows figures to the user.
type Displayer interface {
	Display(items []Item) error
}

// ErrNothingToShow is returned when Display is called without figures.
var ErrNothingToShow = errors.New("no figures to show")

// Window displays every item in its own window and blocks until all are closed.
type Window struct {
	// DPI is the rasterisation resolution.
	DPI float64
}

// Display implements Displayer.
func (w Window) Display(items []Item) error {
	if len(items) == 0 {
		return ErrNothingToShow
	}

	a := app.NewWithID(AppID)
	for _, item := range items {
		img := item.Figure.Image(w.DPI)
		win := a.NewWindow(item.Title)

		view := canvas.NewImageFromImage(img)
		view.FillMode = canvas.ImageFillContain
		view.ScaleMode = canvas.ImageScaleSmooth
		win.SetContent(view)

		b := img.Bounds()
		win.Resize(windowSize(b))
		win.Show()
	}
	a.Run()
	return nil
}

// maxWindow bounds the initial window size; the image scales to fit.
var maxWindow = fyne.NewSize(1600, 1000)

// windowSize scales the image size down to fit maxWindow, keeping its aspect ratio.
func windowSize(b image.Rectangle) fyne.Size {
	size := fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	if size.Width <= 0 || size.Height <= 0 {
		return maxWindow
	}
	limit := maxWindow
	scale := min(limit.Width/size.Width, limit.Height/size.Height, 1)
	return fyne.NewSize(size.Width*scale, size.Height*scale)
}

// Discard drops figures without displaying them.
type Discard struct{}

// Display implements Displayer.
func (Discard) Display([]Item) error {
	return nil
}
