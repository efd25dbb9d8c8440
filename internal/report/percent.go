package report

import "math"

// PercentChange compares a current value against a previous one.
//
// A zero previous value yields 100 when the current value is positive and 0
// when it is not. This is the dashboard's convention for "went from nothing
// to something", not a general percentage formula.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}

	change := (current - previous) / previous * 100
	return math.Round(change*10) / 10
}
