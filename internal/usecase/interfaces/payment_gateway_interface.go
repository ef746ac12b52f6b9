package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (Razorpay by default,
// Mercado Pago as the alternate).
//
// CreateOrder registers the order with the provider and returns the provider
// order id, the URL the client is redirected to for checkout, and the raw
// provider response for traceability. The provider's own protocol is opaque
// beyond these fields; later status changes arrive through the webhook.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, orderID string, amount float64, currency, description string) (providerOrderID string, paymentURL string, providerResponse json.RawMessage, err error)
}
