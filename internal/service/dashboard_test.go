package service

import (
	"context"
	"testing"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockReportRepository is a mock implementation of repo.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) RevenueTotal(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReportRepository) OrderCount(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) NewUserCount(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) NewShopCount(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) NewShipperCount(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) ActiveShopCount(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) ActiveShipperCount(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) RevenueSeries(ctx context.Context, r report.Range) ([]report.RevenueBucket, error) {
	args := m.Called(r)
	return args.Get(0).([]report.RevenueBucket), args.Error(1)
}

func (m *MockReportRepository) NewUserSeries(ctx context.Context, r report.Range) ([]report.CountBucket, error) {
	args := m.Called(r)
	return args.Get(0).([]report.CountBucket), args.Error(1)
}

func (m *MockReportRepository) ActiveUserSeries(ctx context.Context, r report.Range, activeSince time.Time) ([]report.CountBucket, error) {
	args := m.Called(r, activeSince)
	return args.Get(0).([]report.CountBucket), args.Error(1)
}

func (m *MockReportRepository) StatusCounts(ctx context.Context) ([]report.StatusCount, error) {
	args := m.Called()
	return args.Get(0).([]report.StatusCount), args.Error(1)
}

func (m *MockReportRepository) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	args := m.Called(limit)
	return args.Get(0).([]domain.RecentOrder), args.Error(1)
}

func (m *MockReportRepository) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	args := m.Called(limit)
	return args.Get(0).([]domain.User), args.Error(1)
}

func newDashboardService(reports *MockReportRepository, now time.Time) *DashboardService {
	svc := NewDashboardService(reports, zap.NewNop().Sugar())
	svc.now = func() time.Time { return now }
	return svc
}

func TestDashboardService_Overview(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	curStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	reports := new(MockReportRepository)
	reports.On("RevenueTotal", curStart, now).Return(120.0, nil).Once()
	reports.On("RevenueTotal", prevStart, curStart).Return(0.0, nil).Once()
	reports.On("OrderCount", curStart, now).Return(int64(4), nil).Once()
	reports.On("OrderCount", prevStart, curStart).Return(int64(8), nil).Once()
	reports.On("NewUserCount", curStart, now).Return(int64(30), nil).Once()
	reports.On("NewUserCount", prevStart, curStart).Return(int64(20), nil).Once()
	reports.On("NewShopCount", curStart, now).Return(int64(3), nil).Once()
	reports.On("NewShopCount", prevStart, curStart).Return(int64(2), nil).Once()
	reports.On("NewShipperCount", curStart, now).Return(int64(0), nil).Once()
	reports.On("NewShipperCount", prevStart, curStart).Return(int64(0), nil).Once()
	reports.On("ActiveShopCount").Return(int64(12), nil).Once()
	reports.On("ActiveShipperCount").Return(int64(7), nil).Once()

	svc := newDashboardService(reports, now)

	overview, err := svc.Overview(context.Background())

	assert.NoError(t, err)
	// previous month revenue of zero counts as a full 100% gain
	assert.Equal(t, Stat{Current: 120, Percentage: 100}, overview.Revenue)
	assert.Equal(t, Stat{Current: 4, Percentage: -50}, overview.Orders)
	assert.Equal(t, Stat{Current: 30, Percentage: 50}, overview.Users)
	assert.Equal(t, Stat{Current: 12, Percentage: 50}, overview.Shops)
	assert.Equal(t, Stat{Current: 7, Percentage: 0}, overview.Shippers)
	reports.AssertExpectations(t)
}

func TestDashboardService_Overview_QueryFailure(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	reports := new(MockReportRepository)
	reports.On("RevenueTotal", mock.Anything, mock.Anything).Return(0.0, assert.AnError)
	reports.On("OrderCount", mock.Anything, mock.Anything).Return(int64(0), nil)
	reports.On("NewUserCount", mock.Anything, mock.Anything).Return(int64(0), nil)
	reports.On("NewShopCount", mock.Anything, mock.Anything).Return(int64(0), nil)
	reports.On("NewShipperCount", mock.Anything, mock.Anything).Return(int64(0), nil)
	reports.On("ActiveShopCount").Return(int64(0), nil)
	reports.On("ActiveShipperCount").Return(int64(0), nil)

	svc := newDashboardService(reports, now)

	overview, err := svc.Overview(context.Background())

	assert.Error(t, err)
	assert.Nil(t, overview)
}

func TestDashboardService_RecentActivity_MergesAndCaps(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	orders := make([]domain.RecentOrder, 5)
	for i := range orders {
		orders[i] = domain.RecentOrder{
			OrderID:   "ORD-00" + string(rune('1'+i)),
			Customer:  domain.UserRef{Name: "Alice"},
			CreatedAt: now.Add(-time.Duration(i*2) * time.Minute),
		}
	}
	users := make([]domain.User, 5)
	for i := range users {
		users[i] = domain.User{
			Name:      "Bob",
			CreatedAt: now.Add(-time.Duration(i*2+1) * time.Minute),
		}
	}

	reports := new(MockReportRepository)
	reports.On("RecentOrders", 5).Return(orders, nil).Once()
	reports.On("RecentUsers", 5).Return(users, nil).Once()

	svc := newDashboardService(reports, now)

	activities, err := svc.RecentActivity(context.Background())

	assert.NoError(t, err)
	assert.Len(t, activities, 10)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].CreatedAt.After(activities[i-1].CreatedAt))
	}
	assert.Equal(t, "order", activities[0].Type)
	assert.Equal(t, "New order #ORD-001 from Alice", activities[0].Description)
	assert.Equal(t, "user", activities[1].Type)
	assert.Equal(t, "New user registered: Bob", activities[1].Description)
	reports.AssertExpectations(t)
}

func TestDashboardService_RevenueChart(t *testing.T) {
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	reports := new(MockReportRepository)
	reports.On("RevenueSeries", mock.MatchedBy(func(r report.Range) bool {
		return r.Granularity == report.GranularityDay && r.End.Equal(now)
	})).Return([]report.RevenueBucket{
		{Key: "2024-05-01", Total: 300, Count: 2},
		{Key: "2024-05-03", Total: 50, Count: 1},
	}, nil).Once()

	svc := newDashboardService(reports, now)

	series, err := svc.RevenueChart(context.Background(), "1w")

	assert.NoError(t, err)
	assert.Len(t, series.Labels, 8)
	assert.Equal(t, "2024-04-26", series.Labels[0])
	assert.Equal(t, "2024-05-03", series.Labels[7])
	assert.Equal(t, 300.0, series.Values[5])
	assert.Equal(t, 0.0, series.Values[6])
	assert.Equal(t, 50.0, series.Values[7])
	reports.AssertExpectations(t)
}

func TestDashboardService_OrderStatusChart(t *testing.T) {
	reports := new(MockReportRepository)
	reports.On("StatusCounts").Return([]report.StatusCount{
		{Status: "pending", Count: 1},
		{Status: "completed", Count: 3},
		{Status: "shipped", Count: 2},
	}, nil).Once()

	svc := newDashboardService(reports, time.Now())

	series, err := svc.OrderStatusChart(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Pending", "Processing", "Completed"}, series.Labels)
	assert.Equal(t, []int64{1, 2, 3}, series.Values)
	reports.AssertExpectations(t)
}

func TestDashboardService_AccountGrowthChart(t *testing.T) {
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	activeSince := now.Add(-30 * 24 * time.Hour)

	reports := new(MockReportRepository)
	reports.On("NewUserSeries", mock.Anything).Return([]report.CountBucket{
		{Key: "2024-05-01", Count: 3},
	}, nil).Once()
	reports.On("ActiveUserSeries", mock.Anything, activeSince).Return([]report.CountBucket{
		{Key: "2024-05-02", Count: 2},
	}, nil).Once()

	svc := newDashboardService(reports, now)

	series, err := svc.AccountGrowthChart(context.Background(), "1w")

	assert.NoError(t, err)
	assert.Len(t, series.Labels, 8)
	assert.Len(t, series.NewUsers, 8)
	assert.Len(t, series.ActiveUsers, 8)
	assert.Equal(t, int64(3), series.NewUsers[5])
	assert.Equal(t, int64(0), series.ActiveUsers[5])
	assert.Equal(t, int64(2), series.ActiveUsers[6])
	reports.AssertExpectations(t)
}
