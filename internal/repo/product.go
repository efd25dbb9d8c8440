package repo

import (
	"context"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductFilter struct {
	Search string
	Page   int
	Limit  int
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (*domain.Product, error)
	ChangeStatus(ctx context.Context, id primitive.ObjectID, status domain.ProductStatus) (*domain.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, name string) (*domain.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
