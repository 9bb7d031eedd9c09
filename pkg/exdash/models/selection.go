package models

// Selection names the columns a dashboard is built from.
type Selection struct {
	// Numeric is the column used by the histogram, box plot and line plot.
	Numeric string `json:"numeric"`
	// Categorical is the column used by the bar and pie charts.
	Categorical string `json:"categorical"`
	// Datetime is the optional x axis of the line plot. Nil disables the line plot.
	Datetime *string `json:"datetime,omitempty"`
}

// DatetimeColumn returns the datetime column name and whether one was given.
func (s Selection) DatetimeColumn() (string, bool) {
	if s.Datetime == nil || *s.Datetime == "" {
		return "", false
	}
	return *s.Datetime, true
}
