// Package stats computes the figures' underlying statistics.
package stats

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// DefaultBins is the number of histogram bins.
const DefaultBins = 30

// Histogram partitions values into n equal-width bins spanning [min, max].
// Bins are half-open except the last, which includes max. When every value is
// equal the range is widened to [v-0.5, v+0.5]. An empty input yields empty data.
func Histogram(values []float64, n int) models.HistogramData {
	if len(values) == 0 || n <= 0 {
		return models.HistogramData{}
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := make([]float64, n+1)
	floats.Span(edges, lo, hi)

	counts := make([]int, n)
	scale := float64(n) / (hi - lo)
	for _, v := range values {
		idx := int((v - lo) * scale)
		if idx >= n {
			idx = n - 1
		}
		// Floating point error can put v one bin off its edges
		if idx > 0 && v < edges[idx] {
			idx--
		} else if idx < n-1 && v >= edges[idx+1] {
			idx++
		}
		counts[idx]++
	}

	return models.HistogramData{Edges: edges, Counts: counts}
}
