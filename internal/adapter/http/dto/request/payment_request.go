package request

import "encoding/json"

// CreatePaymentOrderRequest is the payload for order creation. The owning
// user comes from the auth token, never from the body.
type CreatePaymentOrderRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	Currency      string  `json:"currency"`
	PaymentType   string  `json:"payment_type" binding:"required"`
	ReferenceID   string  `json:"reference_id" binding:"required"`
	ReferenceType string  `json:"reference_type" binding:"required"`
	Description   string  `json:"description"`
}

// PaymentWebhookRequest is the gateway status callback payload.
//
// gateway_response is stored as-is (raw JSON) to support varying provider
// schemas.
type PaymentWebhookRequest struct {
	OrderID         string          `json:"order_id" binding:"required"`
	Status          string          `json:"status" binding:"required"`
	TransactionID   string          `json:"transaction_id"`
	GatewayResponse json.RawMessage `json:"gateway_response"`
}

// RefundRequest carries the user-supplied refund reason.
type RefundRequest struct {
	Reason string `json:"reason" binding:"required"`
}
