package report

import "time"

// RevenueBucket is one grouped row of the revenue aggregation: the summed
// amount and order count for a single bucket key.
type RevenueBucket struct {
	Key   string  `bson:"_id"`
	Total float64 `bson:"total"`
	Count int64   `bson:"count"`
}

// CountBucket is one grouped row of a counting aggregation.
type CountBucket struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

// Series is chart data: labels and values index-aligned, ascending by label.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// CountSeries is a Series whose values are counts.
type CountSeries struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// GrowthSeries carries the two account-growth metrics aligned to one label set.
type GrowthSeries struct {
	Labels      []string `json:"labels"`
	NewUsers    []int64  `json:"newUsers"`
	ActiveUsers []int64  `json:"activeUsers"`
}

// BucketKeys enumerates every bucket key between r.Start and r.End
// inclusive, in ascending order.
func BucketKeys(r Range) []string {
	layout := r.Granularity.GoLayout()
	keys := []string{}

	if r.Granularity == GranularityMonth {
		cur := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, r.Start.Location())
		end := time.Date(r.End.Year(), r.End.Month(), 1, 0, 0, 0, 0, r.End.Location())
		for !cur.After(end) {
			keys = append(keys, cur.Format(layout))
			cur = cur.AddDate(0, 1, 0)
		}
		return keys
	}

	cur := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location())
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, r.End.Location())
	for !cur.After(end) {
		keys = append(keys, cur.Format(layout))
		cur = cur.AddDate(0, 0, 1)
	}
	return keys
}

// BuildRevenueSeries shapes revenue buckets into chart data, zero-filling
// buckets with no matching orders.
func BuildRevenueSeries(r Range, buckets []RevenueBucket) Series {
	totals := make(map[string]float64, len(buckets))
	for _, b := range buckets {
		totals[b.Key] = b.Total
	}

	labels := BucketKeys(r)
	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = totals[label]
	}

	return Series{Labels: labels, Values: values}
}

// BuildOrderCountSeries shapes the per-bucket order counts of the revenue
// aggregation into chart data, zero-filled like every other series.
func BuildOrderCountSeries(r Range, buckets []RevenueBucket) CountSeries {
	counts := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		counts[b.Key] = b.Count
	}

	labels := BucketKeys(r)
	values := make([]int64, len(labels))
	for i, label := range labels {
		values[i] = counts[label]
	}

	return CountSeries{Labels: labels, Values: values}
}

// BuildGrowthSeries aligns new-user and active-user buckets to a single
// zero-filled label set.
func BuildGrowthSeries(r Range, newUsers, activeUsers []CountBucket) GrowthSeries {
	newByKey := make(map[string]int64, len(newUsers))
	for _, b := range newUsers {
		newByKey[b.Key] = b.Count
	}
	activeByKey := make(map[string]int64, len(activeUsers))
	for _, b := range activeUsers {
		activeByKey[b.Key] = b.Count
	}

	labels := BucketKeys(r)
	series := GrowthSeries{
		Labels:      labels,
		NewUsers:    make([]int64, len(labels)),
		ActiveUsers: make([]int64, len(labels)),
	}
	for i, label := range labels {
		series.NewUsers[i] = newByKey[label]
		series.ActiveUsers[i] = activeByKey[label]
	}

	return series
}
