package stats

import (
	"sort"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

const (
	// DefaultBarTop is the number of categories shown by the bar chart.
	DefaultBarTop = 10
	// DefaultPieTop is the number of categories shown by the pie chart.
	DefaultPieTop = 8
)

// ValueCounts counts each distinct label. The result is sorted by descending
// count; equal counts keep the order in which the labels first appear.
func ValueCounts(labels []string) []models.CategoryCount {
	index := make(map[string]int)
	var counts []models.CategoryCount
	for _, label := range labels {
		if i, ok := index[label]; ok {
			counts[i].Count++
			continue
		}
		index[label] = len(counts)
		counts = append(counts, models.CategoryCount{Label: label, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Top returns the first n entries of sorted counts.
func Top(counts []models.CategoryCount, n int) []models.CategoryCount {
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return append([]models.CategoryCount(nil), counts...)
}

// PieSlices converts counts into wedges whose percentages are relative to the
// sum of the given counts only.
func PieSlices(counts []models.CategoryCount) []models.PieSlice {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	slices := make([]models.PieSlice, 0, len(counts))
	for _, c := range counts {
		s := models.PieSlice{Label: c.Label, Count: c.Count}
		if total > 0 {
			s.Percent = 100 * float64(c.Count) / float64(total)
		}
		slices = append(slices, s)
	}
	return slices
}
