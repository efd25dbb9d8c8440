package domain

import "time"

type OrderStatusEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	OrderHex  string      `json:"order_hex"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	Reason    string      `json:"reason,omitempty"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventOrderApproved      = "order.approved"
	EventOrderRejected      = "order.rejected"
	EventOrderStatusChanged = "order.status_changed"
)

// Activity is a merged recent-event row for the dashboard feed.
type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
