package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"github.com/Noir-tsu/4Foods-admin/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubReportRepository returns canned aggregation results.
type stubReportRepository struct{}

func (stubReportRepository) RevenueTotal(ctx context.Context, start, end time.Time) (float64, error) {
	return 120, nil
}

func (stubReportRepository) OrderCount(ctx context.Context, start, end time.Time) (int64, error) {
	return 4, nil
}

func (stubReportRepository) NewUserCount(ctx context.Context, start, end time.Time) (int64, error) {
	return 30, nil
}

func (stubReportRepository) NewShopCount(ctx context.Context, start, end time.Time) (int64, error) {
	return 3, nil
}

func (stubReportRepository) NewShipperCount(ctx context.Context, start, end time.Time) (int64, error) {
	return 1, nil
}

func (stubReportRepository) ActiveShopCount(ctx context.Context) (int64, error) {
	return 12, nil
}

func (stubReportRepository) ActiveShipperCount(ctx context.Context) (int64, error) {
	return 7, nil
}

func (stubReportRepository) RevenueSeries(ctx context.Context, r report.Range) ([]report.RevenueBucket, error) {
	return []report.RevenueBucket{}, nil
}

func (stubReportRepository) NewUserSeries(ctx context.Context, r report.Range) ([]report.CountBucket, error) {
	return []report.CountBucket{}, nil
}

func (stubReportRepository) ActiveUserSeries(ctx context.Context, r report.Range, activeSince time.Time) ([]report.CountBucket, error) {
	return []report.CountBucket{}, nil
}

func (stubReportRepository) StatusCounts(ctx context.Context) ([]report.StatusCount, error) {
	return []report.StatusCount{{Status: "pending", Count: 2}}, nil
}

func (stubReportRepository) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	return []domain.RecentOrder{}, nil
}

func (stubReportRepository) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	return []domain.User{}, nil
}

func newTestApp() *application {
	logger := zap.NewNop().Sugar()

	return &application{
		logger:           logger,
		dashboardService: service.NewDashboardService(stubReportRepository{}, logger),
	}
}

// Dashboard payloads are the chart/overview objects themselves, never nested
// under a wrapper key, matching what the admin panel reads.
func TestDashboardHandlers_TopLevelPayload(t *testing.T) {
	app := newTestApp()

	t.Run("revenue chart", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/charts/revenue?period=1w", nil)

		app.revenueChartHandler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "labels")
		assert.Contains(t, body, "values")
		assert.NotContains(t, body, "data")
	})

	t.Run("overview", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/overview", nil)

		app.dashboardOverviewHandler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]map[string]float64
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "revenue")
		assert.Contains(t, body, "orders")
		assert.Equal(t, 120.0, body["revenue"]["current"])
	})

	t.Run("account growth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/charts/account-growth?period=1w", nil)

		app.accountGrowthChartHandler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "labels")
		assert.Contains(t, body, "newUsers")
		assert.Contains(t, body, "activeUsers")
		assert.NotContains(t, body, "data")
	})
}
