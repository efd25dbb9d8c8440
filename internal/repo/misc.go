package repo

import (
	"context"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartRepository interface {
	List(ctx context.Context) ([]domain.Cart, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
	Update(ctx context.Context, id primitive.ObjectID, items []domain.CartItem) (*domain.Cart, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.Voucher) error
	List(ctx context.Context) ([]domain.Voucher, error)
	Update(ctx context.Context, id primitive.ObjectID, voucher *domain.Voucher) (*domain.Voucher, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	List(ctx context.Context, conversationID *primitive.ObjectID) ([]domain.Message, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Message, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	List(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error)
	Clear(ctx context.Context) error
}
