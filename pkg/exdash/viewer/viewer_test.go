package viewer

import (
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		bounds   image.Rectangle
		expected fyne.Size
	}{
		{image.Rect(0, 0, 800, 600), fyne.NewSize(800, 600)},
		{image.Rect(0, 0, 3200, 1000), fyne.NewSize(1600, 500)},
		{image.Rect(0, 0, 1344, 2000), fyne.NewSize(672, 1000)},
		{image.Rect(0, 0, 0, 0), maxWindow},
	}

	for _, tt := range tests {
		if result := windowSize(tt.bounds); result != tt.expected {
			t.Errorf("windowSize(%v) = %v, expected %v", tt.bounds, result, tt.expected)
		}
	}
}

func TestDisplayWithoutItems(t *testing.T) {
	if err := (Window{}).Display(nil); !errors.Is(err, ErrNothingToShow) {
		t.Errorf("Expected ErrNothingToShow, got %v", err)
	}
	if err := (Discard{}).Display([]Item{{Title: "x"}}); err != nil {
		t.Errorf("Discard returned %v", err)
	}
}
