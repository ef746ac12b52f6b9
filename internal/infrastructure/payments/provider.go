package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"temple_seva/internal/usecase/interfaces"
)

// NewGatewayFromEnv selects the payment provider.
//
//   - PAYMENT_GATEWAY_MOCK / mock mode short-circuits everything (local, CI)
//   - PAYMENT_GATEWAY_PROVIDER=razorpay (default) or mercadopago
func NewGatewayFromEnv() (interfaces.IPaymentGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MockGateway{}, nil
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_PROVIDER")))
	switch provider {
	case "", "razorpay":
		return NewRazorpayGateway(
			os.Getenv("RAZORPAY_KEY_ID"),
			os.Getenv("RAZORPAY_KEY_SECRET"),
			getenvDefault("FRONTEND_BASE_URL", "http://localhost:3000"),
		)
	case "mercadopago":
		return NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	default:
		return nil, fmt.Errorf("unknown payment gateway provider %q", provider)
	}
}

// MockGateway fabricates provider responses without network calls.
type MockGateway struct{}

func (g *MockGateway) CreateOrder(ctx context.Context, orderID string, amount float64, currency, description string) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start order_id=%s", orderID)

	providerOrderID := fmt.Sprintf("mock_%d", time.Now().UTC().UnixNano())
	resp := map[string]interface{}{
		"id":          providerOrderID,
		"receipt":     orderID,
		"amount":      amount,
		"currency":    currency,
		"status":      "created",
		"description": description,
		"created_at":  time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	paymentURL := fmt.Sprintf("%s/payment/checkout?order_id=%s", getenvDefault("FRONTEND_BASE_URL", "http://localhost:3000"), orderID)
	log.Printf("[payment][gateway] mock create success order_id=%s provider_order_id=%s", orderID, providerOrderID)
	return providerOrderID, paymentURL, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
