package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Voucher struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code       string             `bson:"code" json:"code"`
	Discount   float64            `bson:"discount" json:"discount"`
	Type       string             `bson:"type" json:"type"`
	ValidFrom  *time.Time         `bson:"valid_from,omitempty" json:"validFrom,omitempty"`
	ValidTo    *time.Time         `bson:"valid_to,omitempty" json:"validTo,omitempty"`
	UsageLimit int                `bson:"usage_limit,omitempty" json:"usageLimit,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

const (
	VoucherTypePercent = "percent"
	VoucherTypeFixed   = "fixed"
)

type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConversationID primitive.ObjectID `bson:"conversation_id" json:"conversationId"`
	SenderID       primitive.ObjectID `bson:"sender_id" json:"senderId"`
	Content        string             `bson:"content" json:"content"`
	Read           bool               `bson:"read" json:"read"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty" json:"userId,omitempty"`
	Title     string              `bson:"title" json:"title"`
	Body      string              `bson:"body" json:"body"`
	IsRead    bool                `bson:"is_read" json:"isRead"`
	Meta      map[string]string   `bson:"meta,omitempty" json:"meta,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updatedAt"`
}
