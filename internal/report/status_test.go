package report_test

import (
	"testing"

	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestMapStatusCounts_FoldsIntoDisplayCategories(t *testing.T) {
	counts := []report.StatusCount{
		{Status: "pending", Count: 4},
		{Status: "confirmed", Count: 2},
		{Status: "processing", Count: 3},
		{Status: "shipped", Count: 1},
		{Status: "delivered", Count: 5},
		{Status: "completed", Count: 7},
		{Status: "cancelled", Count: 2},
	}

	series := report.MapStatusCounts(counts)

	assert.Equal(t, []string{"Pending", "Processing", "Completed", "Cancelled"}, series.Labels)
	assert.Equal(t, []int64{4, 6, 12, 2}, series.Values)
}

func TestMapStatusCounts_UnmappedStatusPassesThrough(t *testing.T) {
	counts := []report.StatusCount{
		{Status: "completed", Count: 3},
		{Status: "rejected", Count: 2},
		{Status: "approved", Count: 1},
	}

	series := report.MapStatusCounts(counts)

	assert.Equal(t, []string{"Completed", "approved", "rejected"}, series.Labels)
	assert.Equal(t, []int64{3, 1, 2}, series.Values)
}

func TestMapStatusCounts_ConservesTotal(t *testing.T) {
	counts := []report.StatusCount{
		{Status: "pending", Count: 10},
		{Status: "shipped", Count: 8},
		{Status: "completed", Count: 6},
		{Status: "rejected", Count: 4},
		{Status: "cancelled", Count: 2},
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	series := report.MapStatusCounts(counts)

	assert.Len(t, series.Values, len(series.Labels))

	var mapped int64
	for _, v := range series.Values {
		mapped += v
	}
	assert.Equal(t, total, mapped)
}

func TestMapStatusCounts_Empty(t *testing.T) {
	series := report.MapStatusCounts(nil)

	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Values)
}

func TestParseRevenueStatuses(t *testing.T) {
	assert.Equal(t, []string{"completed"}, report.ParseRevenueStatuses("completed"))
	assert.Equal(t, []string{"completed", "shipped"}, report.ParseRevenueStatuses(" completed , shipped "))
	assert.Equal(t, report.DefaultRevenueStatuses, report.ParseRevenueStatuses(""))
	assert.Equal(t, report.DefaultRevenueStatuses, report.ParseRevenueStatuses(" , "))
}
