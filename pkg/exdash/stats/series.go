package stats

import (
	"sort"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// Series pairs a datetime column with a numeric column, dropping rows where
// either is missing, and sorts the points by ascending time. Rows with equal
// times keep their table order.
func Series(times, values *models.Column) []models.SeriesPoint {
	n := min(times.Len(), values.Len())
	points := make([]models.SeriesPoint, 0, n)
	for i := 0; i < n; i++ {
		if times.IsNull(i) || values.IsNull(i) {
			continue
		}
		points = append(points, models.SeriesPoint{T: times.Time(i), V: values.Float(i)})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].T.Before(points[j].T)
	})
	return points
}
