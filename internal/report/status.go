package report

import (
	"sort"
	"strings"
)

// DefaultRevenueStatuses is the canonical counts-as-revenue set: an order
// contributes to revenue once it has shipped or completed.
var DefaultRevenueStatuses = []string{"completed", "shipped"}

// ParseRevenueStatuses parses a comma-separated status list, falling back to
// the default set when empty.
func ParseRevenueStatuses(s string) []string {
	parts := strings.Split(s, ",")
	statuses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			statuses = append(statuses, p)
		}
	}
	if len(statuses) == 0 {
		return DefaultRevenueStatuses
	}
	return statuses
}

// StatusCount is one grouped row of the raw status distribution.
type StatusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// statusDisplay maps raw order statuses to the categories the status chart
// shows. Unmapped statuses pass through under their raw name.
var statusDisplay = map[string]string{
	"pending":    "Pending",
	"confirmed":  "Processing",
	"processing": "Processing",
	"shipped":    "Processing",
	"delivered":  "Completed",
	"completed":  "Completed",
	"cancelled":  "Cancelled",
}

var displayOrder = []string{"Pending", "Processing", "Completed", "Cancelled"}

// MapStatusCounts folds raw status counts into display categories. Labels
// come out in a fixed canonical order, unmapped statuses after them sorted
// by name, so chart segments stay stable across requests.
func MapStatusCounts(counts []StatusCount) CountSeries {
	totals := make(map[string]int64)
	for _, c := range counts {
		category, ok := statusDisplay[c.Status]
		if !ok {
			category = c.Status
		}
		totals[category] += c.Count
	}

	series := CountSeries{Labels: []string{}, Values: []int64{}}
	for _, category := range displayOrder {
		if count, ok := totals[category]; ok {
			series.Labels = append(series.Labels, category)
			series.Values = append(series.Values, count)
			delete(totals, category)
		}
	}

	rest := make([]string, 0, len(totals))
	for category := range totals {
		rest = append(rest, category)
	}
	sort.Strings(rest)
	for _, category := range rest {
		series.Labels = append(series.Labels, category)
		series.Values = append(series.Values, totals[category])
	}

	return series
}
