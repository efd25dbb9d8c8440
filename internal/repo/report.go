package repo

import (
	"context"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/report"
)

// ReportRepository is the read-only aggregation surface the dashboard is
// built on. Every method issues an independently consistent query; there is
// no cross-query atomicity.
type ReportRepository interface {
	// RevenueTotal sums order amounts over [start, end) for orders whose
	// status is in the counts-as-revenue set.
	RevenueTotal(ctx context.Context, start, end time.Time) (float64, error)
	// OrderCount counts all orders over [start, end) regardless of status.
	OrderCount(ctx context.Context, start, end time.Time) (int64, error)
	NewUserCount(ctx context.Context, start, end time.Time) (int64, error)
	NewShopCount(ctx context.Context, start, end time.Time) (int64, error)
	NewShipperCount(ctx context.Context, start, end time.Time) (int64, error)
	ActiveShopCount(ctx context.Context) (int64, error)
	ActiveShipperCount(ctx context.Context) (int64, error)

	// RevenueSeries groups revenue-counting orders by bucket, returning
	// summed amount and order count per bucket.
	RevenueSeries(ctx context.Context, r report.Range) ([]report.RevenueBucket, error)
	NewUserSeries(ctx context.Context, r report.Range) ([]report.CountBucket, error)
	// ActiveUserSeries buckets users created in the window whose last login
	// is at or after activeSince.
	ActiveUserSeries(ctx context.Context, r report.Range, activeSince time.Time) ([]report.CountBucket, error)
	// StatusCounts groups all orders by raw status, unbounded by window.
	StatusCounts(ctx context.Context) ([]report.StatusCount, error)

	RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error)
	RecentUsers(ctx context.Context, limit int) ([]domain.User, error)
}
