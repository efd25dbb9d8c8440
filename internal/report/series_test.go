package report_test

import (
	"sort"
	"testing"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"github.com/stretchr/testify/assert"
)

func dayRange(start, end time.Time) report.Range {
	return report.Range{Start: start, End: end, Granularity: report.GranularityDay}
}

func TestBucketKeys_DayGranularityCoversEveryDay(t *testing.T) {
	r := dayRange(
		time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC),
	)

	keys := report.BucketKeys(r)

	assert.Equal(t, []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04"}, keys)
}

func TestBucketKeys_MonthGranularitySpansYearBoundary(t *testing.T) {
	r := report.Range{
		Start:       time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Granularity: report.GranularityMonth,
	}

	keys := report.BucketKeys(r)

	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, keys)
}

func TestBucketKeys_OneYearPeriodYieldsMonthKeys(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	r := report.ResolveRange("1y", now)

	keys := report.BucketKeys(r)

	// 12 months back plus the current partial month
	assert.Len(t, keys, 13)
	for _, k := range keys {
		assert.Regexp(t, `^\d{4}-\d{2}$`, k)
	}
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestBuildRevenueSeries_ZeroFillsMissingBuckets(t *testing.T) {
	r := dayRange(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
	)
	buckets := []report.RevenueBucket{
		{Key: "2024-05-03", Total: 50, Count: 1},
		{Key: "2024-05-01", Total: 300, Count: 2},
	}

	series := report.BuildRevenueSeries(r, buckets)

	assert.Equal(t, []string{"2024-05-01", "2024-05-02", "2024-05-03"}, series.Labels)
	assert.Equal(t, []float64{300, 0, 50}, series.Values)
	assert.Len(t, series.Values, len(series.Labels))
}

func TestBuildOrderCountSeries(t *testing.T) {
	r := dayRange(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	)
	buckets := []report.RevenueBucket{
		{Key: "2024-05-02", Total: 120, Count: 4},
	}

	series := report.BuildOrderCountSeries(r, buckets)

	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, series.Labels)
	assert.Equal(t, []int64{0, 4}, series.Values)
}

func TestBuildGrowthSeries_AlignsBothMetricsToOneLabelSet(t *testing.T) {
	r := dayRange(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
	)
	newUsers := []report.CountBucket{
		{Key: "2024-05-01", Count: 3},
		{Key: "2024-05-04", Count: 1},
	}
	activeUsers := []report.CountBucket{
		{Key: "2024-05-01", Count: 2},
	}

	series := report.BuildGrowthSeries(r, newUsers, activeUsers)

	assert.Equal(t, []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04"}, series.Labels)
	assert.Equal(t, []int64{3, 0, 0, 1}, series.NewUsers)
	assert.Equal(t, []int64{2, 0, 0, 0}, series.ActiveUsers)
	assert.Len(t, series.NewUsers, len(series.Labels))
	assert.Len(t, series.ActiveUsers, len(series.Labels))
}
