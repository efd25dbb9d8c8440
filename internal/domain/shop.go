package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShopStatus string

const (
	ShopStatusPending  ShopStatus = "pending"
	ShopStatusApproved ShopStatus = "approved"
	ShopStatusRejected ShopStatus = "rejected"
)

type Shop struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	OwnerID      primitive.ObjectID `bson:"owner_id" json:"ownerId"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	IsActive     bool               `bson:"is_active" json:"isActive"`
	Status       ShopStatus         `bson:"status" json:"status"`
	ApprovalNote string             `bson:"approval_note,omitempty" json:"approvalNote,omitempty"`
	Owner        *UserRef           `bson:"owner,omitempty" json:"owner,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type ShopUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}
