package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the lifecycle state of a payment transaction.
//
// pending is the initial state; completed/failed/cancelled/refunded are
// terminal, except that completed may still move to refund_requested and
// from there to refunded. Legal transitions are enforced by the status
// usecase, not here.

type PaymentStatus string

const (
	PaymentStatusPending         PaymentStatus = "pending"
	PaymentStatusProcessing      PaymentStatus = "processing"
	PaymentStatusCompleted       PaymentStatus = "completed"
	PaymentStatusFailed          PaymentStatus = "failed"
	PaymentStatusCancelled       PaymentStatus = "cancelled"
	PaymentStatusRefunded        PaymentStatus = "refunded"
	PaymentStatusRefundRequested PaymentStatus = "refund_requested"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusRefunded,
		PaymentStatusRefundRequested:
		return true
	}
	return false
}

// PaymentType identifies what a payment pays for. It selects both the
// completion side effect and the refund eligibility policy.

type PaymentType string

const (
	PaymentTypeBooking           PaymentType = "booking"
	PaymentTypeDonation          PaymentType = "donation"
	PaymentTypeStoreOrder        PaymentType = "store_order"
	PaymentTypeEventRegistration PaymentType = "event_registration"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeBooking, PaymentTypeDonation, PaymentTypeStoreOrder, PaymentTypeEventRegistration:
		return true
	}
	return false
}

// ReferenceType identifies the kind of entity a payment references.

type ReferenceType string

const (
	ReferenceTypeBooking    ReferenceType = "booking"
	ReferenceTypeTemple     ReferenceType = "temple"
	ReferenceTypeStoreOrder ReferenceType = "store_order"
	ReferenceTypeEvent      ReferenceType = "event"
)

func (t ReferenceType) Valid() bool {
	switch t {
	case ReferenceTypeBooking, ReferenceTypeTemple, ReferenceTypeStoreOrder, ReferenceTypeEvent:
		return true
	}
	return false
}

// DefaultCurrency is applied when the client omits a currency.
const DefaultCurrency = "INR"

// PaymentTransaction is the payment record persisted by the payments service.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - GSI1 (user_id-index): user_id
//
// Gateway payload:
//   - GatewayResponseRaw keeps the original body (JSON) for traceability/audit.
//   - GatewayResponse is an optional parsed representation, useful for
//     querying/debugging. The refund flow records the user-supplied reason
//     under its "refund_reason" key.
//
// OrderID is immutable and unique for the lifetime of the record. Records are
// never physically deleted (financial record retention).

type PaymentTransaction struct {
	OrderID       string        `json:"order_id"`
	UserID        string        `json:"user_id"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentType   PaymentType   `json:"payment_type"`
	ReferenceID   string        `json:"reference_id"`
	ReferenceType ReferenceType `json:"reference_type"`
	Description   string        `json:"description,omitempty"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`

	GatewayResponseRaw json.RawMessage        `json:"gateway_response_raw,omitempty"`
	GatewayResponse    map[string]interface{} `json:"gateway_response,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
