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

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *CartRepository) List(ctx context.Context) ([]domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list carts: %w", err)
	}

	carts := []domain.Cart{}
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, fmt.Errorf("failed to decode carts: %w", err)
	}

	return carts, nil
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cart domain.Cart
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("cart: %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

func (r *CartRepository) Update(ctx context.Context, id primitive.ObjectID, items []domain.CartItem) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"items":      items,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart domain.Cart
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("cart: %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	return &cart, nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
