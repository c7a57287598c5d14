package models

import "time"

// Order statuses form a closed set; anything else is rejected by the service layer.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Activity actions recorded on an order's audit trail.
const (
	ActivityViewed   = "viewed"
	ActivityModified = "modified"
)

// OrderItem represents a single line item within an order.
// It is owned exclusively by its parent order and never shared.
type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id,omitempty"` // optional reference to a catalog product
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	Price     float64 `json:"price" validate:"gte=0"` // unit price at the time of order
}

// OrderActivity is one audit-trail entry on an order. StaffName is a
// snapshot of the acting user's name at the time of the action, not a
// live reference to the staff record.
type OrderActivity struct {
	StaffID   string    `json:"staff_id"`
	StaffName string    `json:"staff_name"`
	Action    string    `json:"action"` // "viewed" or "modified"
	Timestamp time.Time `json:"timestamp"`
}

// Order represents a customer order.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name" validate:"required"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Items         []OrderItem     `json:"items"`
	Total         float64         `json:"total"` // supplied by the caller, never recomputed
	Status        string          `json:"status"`
	Date          string          `json:"date"` // display date, YYYY-MM-DD
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedBy     string          `json:"created_by"`
	Activities    []OrderActivity `json:"activities"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderUpdate carries a partial order update. Nil fields are left
// untouched; non-nil fields replace the existing value wholesale
// (including the items slice).
type OrderUpdate struct {
	CustomerName  *string      `json:"customer_name"`
	CustomerPhone *string      `json:"customer_phone"`
	Items         *[]OrderItem `json:"items"`
	Total         *float64     `json:"total"`
	Status        *string      `json:"status"`
	Date          *string      `json:"date"`
	ImageURL      *string      `json:"image_url"`
}
