package models

import "time"

// HistogramData holds equal-width bins over the observed range.
type HistogramData struct {
	// Edges has len(Counts)+1 ascending bin boundaries.
	Edges []float64 `json:"edges"`
	// Counts is the number of values per bin.
	Counts []int `json:"counts"`
}

// Total returns the sum of all bin counts.
func (h HistogramData) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// BoxSummary is the five-number summary plus whiskers and outliers.
type BoxSummary struct {
	N         int       `json:"n"`
	Min       float64   `json:"min"`
	Q1        float64   `json:"q1"`
	Median    float64   `json:"median"`
	Q3        float64   `json:"q3"`
	Max       float64   `json:"max"`
	WhiskerLo float64   `json:"whisker_lo"`
	WhiskerHi float64   `json:"whisker_hi"`
	Outliers  []float64 `json:"outliers,omitempty"`
}

// IQR returns the interquartile range.
func (b BoxSummary) IQR() float64 {
	return b.Q3 - b.Q1
}

// CategoryCount is the frequency of one distinct categorical value.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PieSlice is one wedge of a pie chart.
type PieSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	// Percent is the share of the displayed subset, in [0, 100].
	Percent float64 `json:"percent"`
}

// SeriesPoint is one (time, value) pair of the line plot.
type SeriesPoint struct {
	T time.Time `json:"t"`
	V float64   `json:"v"`
}

// DashboardData holds everything the charts are drawn from.
type DashboardData struct {
	Selection Selection       `json:"selection"`
	Histogram HistogramData   `json:"histogram"`
	Box       BoxSummary      `json:"box"`
	Bars      []CategoryCount `json:"bars"`
	Pie       []PieSlice      `json:"pie"`
	// Series is nil when no datetime column was selected.
	Series []SeriesPoint `json:"series,omitempty"`
}
