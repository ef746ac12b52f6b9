package entities

import "time"

// EventRegistrationStatus is the lifecycle of an event registration.

type EventRegistrationStatus string

const (
	EventRegistrationStatusPending   EventRegistrationStatus = "pending"
	EventRegistrationStatusConfirmed EventRegistrationStatus = "confirmed"
	EventRegistrationStatusCancelled EventRegistrationStatus = "cancelled"
)

// EventRegistration is a registration for a temple event persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EventDate is denormalized from the event so refund eligibility can be
// decided without reading an events table this service does not own.

type EventRegistration struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	EventID   string                  `json:"event_id"`
	EventDate time.Time               `json:"event_date"`
	Status    EventRegistrationStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}
