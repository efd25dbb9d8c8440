package repo

import (
	"context"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderFilter struct {
	Status    domain.OrderStatus
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int64, error)
	ListPending(ctx context.Context, limit int) ([]domain.Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
	Approve(ctx context.Context, id primitive.ObjectID, actorID primitive.ObjectID, at time.Time) (*domain.Order, error)
	Reject(ctx context.Context, id primitive.ObjectID, actorID primitive.ObjectID, reason string, at time.Time) (*domain.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
