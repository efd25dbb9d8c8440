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

type ShopRepository struct {
	collection *mongo.Collection
}

func NewShopRepository(db *mongo.Database) *ShopRepository {
	return &ShopRepository{
		collection: db.Collection("shops"),
	}
}

func (r *ShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if shop.ID.IsZero() {
		shop.ID = primitive.NewObjectID()
	}
	if shop.Status == "" {
		shop.Status = domain.ShopStatusPending
	}
	shop.CreatedAt = time.Now()
	shop.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, shop)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}

	return nil
}

// List returns shops with the owner's name and email joined in from users.
func (r *ShopRepository) List(ctx context.Context, filter repo.ShopFilter) ([]domain.Shop, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{}
	if filter.Search != "" {
		match["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.Status != "" {
		match["status"] = filter.Status
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$skip": int64((page - 1) * limit)},
		{"$limit": int64(limit)},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "owner_id",
			"foreignField": "_id",
			"as":           "owner_docs",
		}},
		{"$addFields": bson.M{
			"owner": bson.M{"$arrayElemAt": []interface{}{
				bson.M{"$map": bson.M{
					"input": "$owner_docs",
					"as":    "o",
					"in":    bson.M{"name": "$$o.name", "email": "$$o.email"},
				}},
				0,
			}},
		}},
		{"$project": bson.M{"owner_docs": 0}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	shops := []domain.Shop{}
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, fmt.Errorf("failed to decode shops: %w", err)
	}

	return shops, nil
}

func (r *ShopRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Shop, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var shop domain.Shop
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("shop: %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

func (r *ShopRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.ShopUpdate) (*domain.Shop, error) {
	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

// ChangeStatus flips is_active together with the approval status, matching
// the admin approval workflow.
func (r *ShopRepository) ChangeStatus(ctx context.Context, id primitive.ObjectID, status domain.ShopStatus, approvalNote string) (*domain.Shop, error) {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if approvalNote != "" {
		set["approval_note"] = approvalNote
	}
	switch status {
	case domain.ShopStatusApproved:
		set["is_active"] = true
	case domain.ShopStatusRejected:
		set["is_active"] = false
	}

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *ShopRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.Shop, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var shop domain.Shop
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("shop: %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}

	return &shop, nil
}

func (r *ShopRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("shop: %w", repo.ErrNotFound)
	}

	return nil
}

func (r *ShopRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count shops: %w", err)
	}

	return count, nil
}
