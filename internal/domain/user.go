package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "user"
	RoleShop     Role = "shop"
	RoleShipper  Role = "shipper"
	RoleCustomer Role = "customer"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
	LastLogin *time.Time         `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// UserRef is a name/email projection of a user, used where another
// document denormalizes its owner or customer in.
type UserRef struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// UserUpdate carries the editable fields of a user profile.
// Password changes go through a dedicated flow and are never set here.
type UserUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"isActive"`
}
