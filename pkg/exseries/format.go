package exseries

import "github.com/ukaji3/exseries-go/pkg/exseries/models"

// FormatDates formats the date of every point with layout.
// Missing dates become nil so they serialize as null.
func FormatDates(points []models.Point, layout string) []interface{} {
	dates := make([]interface{}, len(points))
	for i, p := range points {
		if p.DateMissing {
			continue
		}
		dates[i] = p.Date.Format(layout)
	}
	return dates
}

// Values returns the raw value of every point.
func Values(points []models.Point) []interface{} {
	values := make([]interface{}, len(points))
	for i, p := range points {
		if p.ValueMissing {
			continue
		}
		values[i] = p.Value
	}
	return values
}
