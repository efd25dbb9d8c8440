package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepository issues the read-only aggregations behind the dashboard.
// It never mutates the collections it reads.
type ReportRepository struct {
	orders          *mongo.Collection
	users           *mongo.Collection
	shops           *mongo.Collection
	revenueStatuses []string
}

func NewReportRepository(db *mongo.Database, revenueStatuses []string) *ReportRepository {
	if len(revenueStatuses) == 0 {
		revenueStatuses = report.DefaultRevenueStatuses
	}

	return &ReportRepository{
		orders:          db.Collection("orders"),
		users:           db.Collection("users"),
		shops:           db.Collection("shops"),
		revenueStatuses: revenueStatuses,
	}
}

func (r *ReportRepository) RevenueTotal(ctx context.Context, start, end time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"created_at": bson.M{"$gte": start, "$lt": end},
			"status":     bson.M{"$in": r.revenueStatuses},
		}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *ReportRepository) OrderCount(ctx context.Context, start, end time.Time) (int64, error) {
	return r.countInWindow(ctx, r.orders, start, end, bson.M{})
}

func (r *ReportRepository) NewUserCount(ctx context.Context, start, end time.Time) (int64, error) {
	return r.countInWindow(ctx, r.users, start, end, bson.M{})
}

func (r *ReportRepository) NewShopCount(ctx context.Context, start, end time.Time) (int64, error) {
	return r.countInWindow(ctx, r.shops, start, end, bson.M{})
}

func (r *ReportRepository) NewShipperCount(ctx context.Context, start, end time.Time) (int64, error) {
	return r.countInWindow(ctx, r.users, start, end, bson.M{"role": domain.RoleShipper})
}

func (r *ReportRepository) countInWindow(ctx context.Context, coll *mongo.Collection, start, end time.Time, extra bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	query := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	for k, v := range extra {
		query[k] = v
	}

	count, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", coll.Name(), err)
	}

	return count, nil
}

func (r *ReportRepository) ActiveShopCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.shops.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count active shops: %w", err)
	}

	return count, nil
}

func (r *ReportRepository) ActiveShipperCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.users.CountDocuments(ctx, bson.M{"role": domain.RoleShipper, "is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count active shippers: %w", err)
	}

	return count, nil
}

func (r *ReportRepository) RevenueSeries(ctx context.Context, rng report.Range) ([]report.RevenueBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"created_at": bson.M{"$gte": rng.Start, "$lte": rng.End},
			"status":     bson.M{"$in": r.revenueStatuses},
		}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": rng.Granularity.MongoFormat(),
				"date":   "$created_at",
			}},
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue series: %w", err)
	}

	buckets := []report.RevenueBucket{}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode revenue series: %w", err)
	}

	return buckets, nil
}

func (r *ReportRepository) NewUserSeries(ctx context.Context, rng report.Range) ([]report.CountBucket, error) {
	match := bson.M{
		"created_at": bson.M{"$gte": rng.Start, "$lte": rng.End},
	}

	return r.userCountSeries(ctx, rng, match)
}

func (r *ReportRepository) ActiveUserSeries(ctx context.Context, rng report.Range, activeSince time.Time) ([]report.CountBucket, error) {
	match := bson.M{
		"created_at": bson.M{"$gte": rng.Start, "$lte": rng.End},
		"last_login": bson.M{"$gte": activeSince},
	}

	return r.userCountSeries(ctx, rng, match)
}

func (r *ReportRepository) userCountSeries(ctx context.Context, rng report.Range, match bson.M) ([]report.CountBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": rng.Granularity.MongoFormat(),
				"date":   "$created_at",
			}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user series: %w", err)
	}

	buckets := []report.CountBucket{}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode user series: %w", err)
	}

	return buckets, nil
}

func (r *ReportRepository) StatusCounts(ctx context.Context) ([]report.StatusCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate status counts: %w", err)
	}

	counts := []report.StatusCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}

	return counts, nil
}

func (r *ReportRepository) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$sort": bson.M{"created_at": -1}},
		{"$limit": int64(limit)},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer_docs",
		}},
		{"$addFields": bson.M{
			"customer": bson.M{"$arrayElemAt": []interface{}{
				bson.M{"$map": bson.M{
					"input": "$customer_docs",
					"as":    "c",
					"in":    bson.M{"name": "$$c.name", "email": "$$c.email"},
				}},
				0,
			}},
		}},
		{"$project": bson.M{
			"order_id":   1,
			"amount":     1,
			"status":     1,
			"created_at": 1,
			"customer":   1,
		}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate recent orders: %w", err)
	}

	orders := []domain.RecentOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode recent orders: %w", err)
	}

	// customers can be deleted out from under their orders
	for i := range orders {
		if orders[i].Customer.Name == "" {
			orders[i].Customer.Name = "Unknown Customer"
		}
	}

	return orders, nil
}

func (r *ReportRepository) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"name": 1, "created_at": 1})

	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode recent users: %w", err)
	}

	return users, nil
}
