package entities

import "time"

// BookingStatus is the lifecycle of a darshan/puja booking.
//
// A booking is created pending and is confirmed by the payment completion
// side effect. Confirming an already confirmed booking is a no-op.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the temple booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ScheduledDate drives refund eligibility: only bookings scheduled strictly
// in the future may be refunded.

type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	TempleID      string        `json:"temple_id"`
	Status        BookingStatus `json:"status"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
