package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRejected   OrderStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	OrderID         string              `bson:"order_id" json:"orderId"`
	CustomerID      primitive.ObjectID  `bson:"customer_id" json:"customerId"`
	ShopID          primitive.ObjectID  `bson:"shop_id" json:"shopId"`
	Items           []OrderItem         `bson:"items" json:"items"`
	Amount          float64             `bson:"amount" json:"amount"`
	Status          OrderStatus         `bson:"status" json:"status"`
	ShippingAddress ShippingAddress     `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string              `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus   PaymentStatus       `bson:"payment_status" json:"paymentStatus"`
	ApprovedAt      *time.Time          `bson:"approved_at,omitempty" json:"approvedAt,omitempty"`
	ApprovedBy      *primitive.ObjectID `bson:"approved_by,omitempty" json:"approvedBy,omitempty"`
	RejectedAt      *time.Time          `bson:"rejected_at,omitempty" json:"rejectedAt,omitempty"`
	RejectedBy      *primitive.ObjectID `bson:"rejected_by,omitempty" json:"rejectedBy,omitempty"`
	RejectionReason string              `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updatedAt"`
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Price     float64            `bson:"price" json:"price"`
}

type ShippingAddress struct {
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
	ZipCode string `bson:"zip_code" json:"zipCode"`
}

// RecentOrder is an order row with the customer denormalized in,
// as consumed by the dashboard recent-orders table.
type RecentOrder struct {
	OrderID   string      `bson:"order_id" json:"orderId"`
	Customer  UserRef     `bson:"customer" json:"customerId"`
	Amount    float64     `bson:"amount" json:"amount"`
	Status    OrderStatus `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"created_at" json:"createdAt"`
}
