package repo

import (
	"context"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserFilter struct {
	Search string
	Page   int
	Limit  int
}

type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.UserUpdate) (*domain.User, error)
	ChangeRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
