package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentFeedLimit    = 10
	recentFetchLimit   = 5
	activeUserTrailing = 30 * 24 * time.Hour
)

// Stat is one overview metric: the current value and its month-over-month
// percentage change.
type Stat struct {
	Current    float64 `json:"current"`
	Percentage float64 `json:"percentage"`
}

// Overview is the dashboard's single-snapshot summary.
type Overview struct {
	Revenue  Stat `json:"revenue"`
	Orders   Stat `json:"orders"`
	Users    Stat `json:"users"`
	Shops    Stat `json:"shops"`
	Shippers Stat `json:"shippers"`
}

type DashboardService struct {
	reports repo.ReportRepository
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewDashboardService(reports repo.ReportRepository, logger *zap.SugaredLogger) *DashboardService {
	return &DashboardService{
		reports: reports,
		logger:  logger,
		now:     time.Now,
	}
}

// Overview compares the current calendar month so far against the entire
// previous calendar month. The underlying aggregations run concurrently and
// are not atomic with each other, which is fine for a reporting dashboard.
func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	now := s.now()
	curStart, prevStart := report.MonthWindow(now)

	var (
		curRevenue, prevRevenue     float64
		curOrders, prevOrders       int64
		curUsers, prevUsers         int64
		curShops, prevShops         int64
		curShippers, prevShippers   int64
		activeShops, activeShippers int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		curRevenue, err = s.reports.RevenueTotal(gctx, curStart, now)
		return err
	})
	g.Go(func() (err error) {
		prevRevenue, err = s.reports.RevenueTotal(gctx, prevStart, curStart)
		return err
	})
	g.Go(func() (err error) {
		curOrders, err = s.reports.OrderCount(gctx, curStart, now)
		return err
	})
	g.Go(func() (err error) {
		prevOrders, err = s.reports.OrderCount(gctx, prevStart, curStart)
		return err
	})
	g.Go(func() (err error) {
		curUsers, err = s.reports.NewUserCount(gctx, curStart, now)
		return err
	})
	g.Go(func() (err error) {
		prevUsers, err = s.reports.NewUserCount(gctx, prevStart, curStart)
		return err
	})
	g.Go(func() (err error) {
		curShops, err = s.reports.NewShopCount(gctx, curStart, now)
		return err
	})
	g.Go(func() (err error) {
		prevShops, err = s.reports.NewShopCount(gctx, prevStart, curStart)
		return err
	})
	g.Go(func() (err error) {
		curShippers, err = s.reports.NewShipperCount(gctx, curStart, now)
		return err
	})
	g.Go(func() (err error) {
		prevShippers, err = s.reports.NewShipperCount(gctx, prevStart, curStart)
		return err
	})
	g.Go(func() (err error) {
		activeShops, err = s.reports.ActiveShopCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		activeShippers, err = s.reports.ActiveShipperCount(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build overview: %w", err)
	}

	return &Overview{
		Revenue: Stat{
			Current:    curRevenue,
			Percentage: report.PercentChange(curRevenue, prevRevenue),
		},
		Orders: Stat{
			Current:    float64(curOrders),
			Percentage: report.PercentChange(float64(curOrders), float64(prevOrders)),
		},
		Users: Stat{
			Current:    float64(curUsers),
			Percentage: report.PercentChange(float64(curUsers), float64(prevUsers)),
		},
		Shops: Stat{
			Current:    float64(activeShops),
			Percentage: report.PercentChange(float64(curShops), float64(prevShops)),
		},
		Shippers: Stat{
			Current:    float64(activeShippers),
			Percentage: report.PercentChange(float64(curShippers), float64(prevShippers)),
		},
	}, nil
}

// RecentActivity merges the newest orders and user registrations into one
// time-sorted feed, capped at ten entries.
func (s *DashboardService) RecentActivity(ctx context.Context) ([]domain.Activity, error) {
	var (
		orders []domain.RecentOrder
		users  []domain.User
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		orders, err = s.reports.RecentOrders(gctx, recentFetchLimit)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.reports.RecentUsers(gctx, recentFetchLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch recent activity: %w", err)
	}

	activities := make([]domain.Activity, 0, len(orders)+len(users))
	for _, order := range orders {
		activities = append(activities, domain.Activity{
			Type:        "order",
			Description: fmt.Sprintf("New order #%s from %s", order.OrderID, order.Customer.Name),
			CreatedAt:   order.CreatedAt,
		})
	}
	for _, user := range users {
		activities = append(activities, domain.Activity{
			Type:        "user",
			Description: fmt.Sprintf("New user registered: %s", user.Name),
			CreatedAt:   user.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	if len(activities) > recentFeedLimit {
		activities = activities[:recentFeedLimit]
	}

	return activities, nil
}

func (s *DashboardService) RecentOrders(ctx context.Context) ([]domain.RecentOrder, error) {
	orders, err := s.reports.RecentOrders(ctx, recentFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}

	return orders, nil
}

func (s *DashboardService) RevenueChart(ctx context.Context, period string) (report.Series, error) {
	rng := report.ResolveRange(period, s.now())

	buckets, err := s.reports.RevenueSeries(ctx, rng)
	if err != nil {
		return report.Series{}, fmt.Errorf("failed to build revenue chart: %w", err)
	}

	return report.BuildRevenueSeries(rng, buckets), nil
}

func (s *DashboardService) OrderStatusChart(ctx context.Context) (report.CountSeries, error) {
	counts, err := s.reports.StatusCounts(ctx)
	if err != nil {
		return report.CountSeries{}, fmt.Errorf("failed to build status chart: %w", err)
	}

	return report.MapStatusCounts(counts), nil
}

// AccountGrowthChart returns new and active user counts per bucket. Active
// users are measured against the trailing 30 days of now, not of each
// bucket, so historical buckets drift as time passes.
func (s *DashboardService) AccountGrowthChart(ctx context.Context, period string) (report.GrowthSeries, error) {
	now := s.now()
	rng := report.ResolveRange(period, now)
	activeSince := now.Add(-activeUserTrailing)

	var newUsers, activeUsers []report.CountBucket

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		newUsers, err = s.reports.NewUserSeries(gctx, rng)
		return err
	})
	g.Go(func() (err error) {
		activeUsers, err = s.reports.ActiveUserSeries(gctx, rng, activeSince)
		return err
	})

	if err := g.Wait(); err != nil {
		return report.GrowthSeries{}, fmt.Errorf("failed to build growth chart: %w", err)
	}

	return report.BuildGrowthSeries(rng, newUsers, activeUsers), nil
}
