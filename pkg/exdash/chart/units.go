// Package chart draws dashboard figures with gonum/plot.
package chart

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// DefaultDPI is the default raster resolution.
// At 96 DPI one inch is 96 pixels, the resolution Excel and most screens assume.
const DefaultDPI = 96

// Inches converts a size in inches to a vg.Length (points).
func Inches(in float64) vg.Length {
	return vg.Length(in) * vg.Inch
}

// Pixels converts a vg.Length to whole pixels at the given DPI.
func Pixels(l vg.Length, dpi float64) int {
	return int(math.Round(float64(l/vg.Inch) * dpi))
}

// Degrees converts an angle in degrees to radians.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}
