package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VoucherRepository struct {
	collection *mongo.Collection
}

func NewVoucherRepository(db *mongo.Database) *VoucherRepository {
	return &VoucherRepository{
		collection: db.Collection("vouchers"),
	}
}

func (r *VoucherRepository) Create(ctx context.Context, voucher *domain.Voucher) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if voucher.ID.IsZero() {
		voucher.ID = primitive.NewObjectID()
	}
	if voucher.Type == "" {
		voucher.Type = domain.VoucherTypePercent
	}
	voucher.CreatedAt = time.Now()
	voucher.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, voucher)
	if err != nil {
		return fmt.Errorf("failed to create voucher: %w", err)
	}

	return nil
}

func (r *VoucherRepository) List(ctx context.Context) ([]domain.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}

	vouchers := []domain.Voucher{}
	if err := cursor.All(ctx, &vouchers); err != nil {
		return nil, fmt.Errorf("failed to decode vouchers: %w", err)
	}

	return vouchers, nil
}

func (r *VoucherRepository) Update(ctx context.Context, id primitive.ObjectID, voucher *domain.Voucher) (*domain.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"code":        voucher.Code,
			"discount":    voucher.Discount,
			"type":        voucher.Type,
			"valid_from":  voucher.ValidFrom,
			"valid_to":    voucher.ValidTo,
			"usage_limit": voucher.UsageLimit,
			"updated_at":  time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Voucher
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("voucher: %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update voucher: %w", err)
	}

	return &updated, nil
}

func (r *VoucherRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete voucher: %w", err)
	}

	return nil
}
