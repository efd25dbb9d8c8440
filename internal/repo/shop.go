package repo

import (
	"context"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShopFilter struct {
	Search string
	Status domain.ShopStatus
	Page   int
	Limit  int
}

type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	List(ctx context.Context, filter ShopFilter) ([]domain.Shop, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Shop, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.ShopUpdate) (*domain.Shop, error)
	ChangeStatus(ctx context.Context, id primitive.ObjectID, status domain.ShopStatus, approvalNote string) (*domain.Shop, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
