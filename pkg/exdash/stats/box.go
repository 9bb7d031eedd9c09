package stats

import (
	"math"
	"sort"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// WhiskerIQR is the whisker reach in multiples of the interquartile range.
const WhiskerIQR = 1.5

// Quantile returns the p-quantile of sorted values by linear interpolation
// between closest ranks (h = (n-1)p). It returns NaN for an empty input.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Box computes the five-number summary of values, the whisker ends and the
// outliers lying beyond WhiskerIQR interquartile ranges from the box.
// An empty input yields a zero summary with N == 0.
func Box(values []float64) models.BoxSummary {
	if len(values) == 0 {
		return models.BoxSummary{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	b := models.BoxSummary{
		N:      len(sorted),
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}

	loFence := b.Q1 - WhiskerIQR*b.IQR()
	hiFence := b.Q3 + WhiskerIQR*b.IQR()

	b.WhiskerLo, b.WhiskerHi = b.Q1, b.Q3
	for _, v := range sorted {
		if v >= loFence {
			b.WhiskerLo = math.Min(v, b.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= hiFence {
			b.WhiskerHi = math.Max(sorted[i], b.Q3)
			break
		}
	}

	for _, v := range sorted {
		if v < b.WhiskerLo || v > b.WhiskerHi {
			b.Outliers = append(b.Outliers, v)
		}
	}
	return b
}
