package report_test

import (
	"testing"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestResolveRange_Tokens(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		period      string
		wantStart   time.Time
		granularity report.Granularity
	}{
		{"1w", now.AddDate(0, 0, -7), report.GranularityDay},
		{"1m", time.Date(2024, 4, 15, 12, 30, 0, 0, time.UTC), report.GranularityDay},
		{"6m", time.Date(2023, 11, 15, 12, 30, 0, 0, time.UTC), report.GranularityMonth},
		{"1y", time.Date(2023, 5, 15, 12, 30, 0, 0, time.UTC), report.GranularityMonth},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			r := report.ResolveRange(tt.period, now)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, now, r.End)
			assert.Equal(t, tt.granularity, r.Granularity)
			assert.True(t, r.Start.Before(r.End))
		})
	}
}

func TestResolveRange_UnknownTokenDefaultsToMonth(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 30, 0, 0, time.UTC)

	got := report.ResolveRange("3y", now)
	want := report.ResolveRange("1m", now)

	assert.Equal(t, want, got)
}

func TestResolveRange_EndTracksInvocationTime(t *testing.T) {
	before := time.Now()
	r := report.ResolveRange("1w", time.Now())

	assert.True(t, r.Start.Before(r.End))
	assert.WithinDuration(t, before, r.End, time.Second)
}

func TestSubMonths_ClampsDayOverflow(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			"march 31 minus one month hits february 28",
			time.Date(2023, 3, 31, 10, 0, 0, 0, time.UTC), 1,
			time.Date(2023, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			"leap year keeps february 29",
			time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC), 1,
			time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			"july 31 minus one month hits june 30",
			time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC), 1,
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			"no overflow stays on the same day",
			time.Date(2024, 6, 15, 8, 45, 0, 0, time.UTC), 1,
			time.Date(2024, 5, 15, 8, 45, 0, 0, time.UTC),
		},
		{
			"twelve months back from leap day clamps",
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 12,
			time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			"subtraction across a year boundary",
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 2,
			time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.SubMonths(tt.in, tt.n))
		})
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	curStart, prevStart := report.MonthWindow(now)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), curStart)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), prevStart)
}

func TestMonthWindow_JanuaryRollsBack(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	curStart, prevStart := report.MonthWindow(now)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), curStart)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), prevStart)
}
