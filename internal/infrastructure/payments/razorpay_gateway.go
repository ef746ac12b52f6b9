package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET")

// RazorpayGateway creates provider orders through the Razorpay Orders API.
//
// Razorpay checkout is client-driven: the gateway order id is embedded in the
// checkout URL the frontend opens, and later status changes arrive through the
// webhook.

type RazorpayGateway struct {
	client          *razorpay.Client
	checkoutBaseURL string
}

func NewRazorpayGateway(keyID, keySecret, checkoutBaseURL string) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}
	log.Printf("[payment][gateway] Razorpay client initialized")
	return &RazorpayGateway{
		client:          razorpay.NewClient(keyID, keySecret),
		checkoutBaseURL: checkoutBaseURL,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, orderID string, amount float64, currency, description string) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] razorpay create start order_id=%s amount=%.2f currency=%s", orderID, amount, currency)

	// Razorpay amounts are in the smallest currency unit (paise for INR).
	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": currency,
		"receipt":  orderID,
	}
	if description != "" {
		data["notes"] = map[string]interface{}{"description": description}
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("[payment][gateway] razorpay create failed order_id=%s err=%v", orderID, err)
		return "", "", nil, err
	}

	providerOrderID, _ := resp["id"].(string)
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] razorpay response marshal failed order_id=%s err=%v", orderID, err)
		return "", "", nil, err
	}

	paymentURL := fmt.Sprintf("%s/payment/checkout?order_id=%s", g.checkoutBaseURL, orderID)
	log.Printf("[payment][gateway] razorpay create success order_id=%s provider_order_id=%s", orderID, providerOrderID)
	return providerOrderID, paymentURL, b, nil
}
