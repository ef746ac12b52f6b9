package response

import (
	"testing"
	"time"

	"temple_seva/internal/domain/entities"
)

func TestFromPaymentTransactionWithURL(t *testing.T) {
	now := time.Now().UTC()
	tx := entities.PaymentTransaction{
		OrderID:       "ORDER_1",
		UserID:        "user-1",
		Amount:        501,
		Currency:      "INR",
		PaymentType:   entities.PaymentTypeBooking,
		ReferenceID:   "bk-1",
		ReferenceType: entities.ReferenceTypeBooking,
		Description:   "Darshan booking",
		Status:        entities.PaymentStatusPending,
		TransactionID: "pay_123",
		GatewayResponse: map[string]interface{}{
			"id": "rzp_order_1",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromPaymentTransactionWithURL(tx, "https://checkout.example/ORDER_1")

	if res.OrderID != "ORDER_1" || res.UserID != "user-1" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.PaymentType != "booking" || res.ReferenceType != "booking" {
		t.Fatalf("unexpected type fields: %+v", res)
	}
	if res.Status != "pending" {
		t.Fatalf("expected pending, got %s", res.Status)
	}
	if res.PaymentURL != "https://checkout.example/ORDER_1" {
		t.Fatalf("expected payment url, got %q", res.PaymentURL)
	}
	if res.GatewayResponse["id"] != "rzp_order_1" {
		t.Fatalf("expected gateway response preserved, got %v", res.GatewayResponse)
	}
}

func TestFromPaymentTransactions_Empty(t *testing.T) {
	out := FromPaymentTransactions(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}
