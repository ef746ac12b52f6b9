package entities

import "time"

// StoreOrderStatus is the lifecycle of a temple-store order.

type StoreOrderStatus string

const (
	StoreOrderStatusPending   StoreOrderStatus = "pending"
	StoreOrderStatusPaid      StoreOrderStatus = "paid"
	StoreOrderStatusShipped   StoreOrderStatus = "shipped"
	StoreOrderStatusCancelled StoreOrderStatus = "cancelled"
)

// StoreOrder is a temple-store purchase persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id

type StoreOrder struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Status    StoreOrderStatus `json:"status"`
	Total     float64          `json:"total"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
