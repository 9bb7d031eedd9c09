package models

import (
	"strconv"
	"time"
)

// FormatFloat renders a number the shortest way that round-trips, without exponent
// for integral values (e.g. 25, 25.5).
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTime renders a timestamp as a date, or date and time when it has a time part.
func FormatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
