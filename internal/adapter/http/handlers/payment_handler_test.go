package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"temple_seva/internal/adapter/http/handlers/mocks"
	"temple_seva/internal/adapter/http/middleware"
	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	orders  *mocks.MockIPaymentOrderUseCase
	status  *mocks.MockIPaymentStatusUseCase
	refunds *mocks.MockIRefundUseCase
	router  *gin.Engine
}

func newHandlerFixture(t *testing.T) handlerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	orders := mocks.NewMockIPaymentOrderUseCase(ctrl)
	status := mocks.NewMockIPaymentStatusUseCase(ctrl)
	refunds := mocks.NewMockIRefundUseCase(ctrl)
	handler := NewPaymentHandler(orders, status, refunds)

	router := gin.New()
	authed := router.Group("/v1/payments")
	authed.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, "user-1")
		c.Next()
	})
	authed.POST("/orders", handler.CreateOrder)
	authed.GET("/orders", handler.ListOrders)
	authed.GET("/orders/:order_id", handler.GetOrder)
	authed.POST("/orders/:order_id/refund", handler.RequestRefund)
	router.POST("/v1/payments/webhook", handler.Webhook)

	return handlerFixture{orders: orders, status: status, refunds: refunds, router: router}
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPaymentHandler_CreateOrder(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		f := newHandlerFixture(t)
		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/orders", `{"amount":0}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("invalid payment type maps to 400", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.orders.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			Return(entities.PaymentTransaction{}, "", usecase.ErrInvalidPaymentType)

		body := `{"amount":100,"payment_type":"subscription","reference_id":"x","reference_type":"booking"}`
		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/orders", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		created := entities.PaymentTransaction{
			OrderID:       "ORDER_1",
			UserID:        "user-1",
			Amount:        501,
			Currency:      "INR",
			PaymentType:   entities.PaymentTypeBooking,
			ReferenceID:   "bk-1",
			ReferenceType: entities.ReferenceTypeBooking,
			Status:        entities.PaymentStatusPending,
		}
		f.orders.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, cmd usecase.CreateOrderCommand) (entities.PaymentTransaction, string, error) {
				if cmd.UserID != "user-1" {
					t.Fatalf("expected user id from context, got %q", cmd.UserID)
				}
				return created, "https://checkout.example/ORDER_1", nil
			})

		body := `{"amount":501,"currency":"INR","payment_type":"booking","reference_id":"bk-1","reference_type":"booking"}`
		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/orders", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["order_id"] != "ORDER_1" || resp["status"] != "pending" {
			t.Fatalf("unexpected response: %v", resp)
		}
		if resp["payment_url"] != "https://checkout.example/ORDER_1" {
			t.Fatalf("expected payment_url in response, got %v", resp)
		}
	})
}

func TestPaymentHandler_GetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.orders.EXPECT().
			GetByOrderID(gomock.Any(), "user-1", "ORDER_404").
			Return(entities.PaymentTransaction{}, usecase.ErrPaymentOrderNotFound)

		rec := doJSON(t, f.router, http.MethodGet, "/v1/payments/orders/ORDER_404", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.orders.EXPECT().
			GetByOrderID(gomock.Any(), "user-1", "ORDER_1").
			Return(entities.PaymentTransaction{OrderID: "ORDER_1", UserID: "user-1", Status: entities.PaymentStatusCompleted}, nil)

		rec := doJSON(t, f.router, http.MethodGet, "/v1/payments/orders/ORDER_1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
		}
	})
}

func TestPaymentHandler_ListOrders(t *testing.T) {
	f := newHandlerFixture(t)
	f.orders.EXPECT().
		ListByUserID(gomock.Any(), "user-1").
		Return([]entities.PaymentTransaction{
			{OrderID: "ORDER_1", UserID: "user-1", Status: entities.PaymentStatusCompleted},
			{OrderID: "ORDER_2", UserID: "user-1", Status: entities.PaymentStatusPending},
		}, nil)

	rec := doJSON(t, f.router, http.MethodGet, "/v1/payments/orders", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(resp))
	}
}

func TestPaymentHandler_Webhook(t *testing.T) {
	t.Run("missing order id", func(t *testing.T) {
		f := newHandlerFixture(t)
		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/webhook", `{"status":"completed"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.status.EXPECT().
			ApplyStatusUpdate(gomock.Any(), "ORDER_404", entities.PaymentStatusCompleted, "", gomock.Any()).
			Return(entities.PaymentTransaction{}, usecase.ErrPaymentOrderNotFound)

		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/webhook", `{"order_id":"ORDER_404","status":"completed"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.status.EXPECT().
			ApplyStatusUpdate(gomock.Any(), "ORDER_1", entities.PaymentStatusRefunded, "", gomock.Any()).
			Return(entities.PaymentTransaction{}, usecase.ErrIllegalTransition)

		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/webhook", `{"order_id":"ORDER_1","status":"refunded"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.status.EXPECT().
			ApplyStatusUpdate(gomock.Any(), "ORDER_1", entities.PaymentStatusCompleted, "pay_123", gomock.Any()).
			Return(entities.PaymentTransaction{OrderID: "ORDER_1", Status: entities.PaymentStatusCompleted}, nil)

		body := `{"order_id":"ORDER_1","status":"completed","transaction_id":"pay_123","gateway_response":{"id":"pay_123"}}`
		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/webhook", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("bad signature rejected when secret configured", func(t *testing.T) {
		f := newHandlerFixture(t)
		t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec_test")

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", strings.NewReader(`{"order_id":"ORDER_1","status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Razorpay-Signature", "deadbeef")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("valid signature accepted", func(t *testing.T) {
		f := newHandlerFixture(t)
		t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec_test")
		f.status.EXPECT().
			ApplyStatusUpdate(gomock.Any(), "ORDER_1", entities.PaymentStatusCompleted, "", gomock.Any()).
			Return(entities.PaymentTransaction{OrderID: "ORDER_1", Status: entities.PaymentStatusCompleted}, nil)

		body := `{"order_id":"ORDER_1","status":"completed"}`
		mac := hmac.New(sha256.New, []byte("whsec_test"))
		mac.Write([]byte(body))
		signature := hex.EncodeToString(mac.Sum(nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Razorpay-Signature", signature)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
		}
	})
}

func TestPaymentHandler_RequestRefund(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		f := newHandlerFixture(t)
		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/orders/ORDER_1/refund", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("denied by policy carries reason", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.refunds.EXPECT().
			RequestRefund(gomock.Any(), "user-1", "ORDER_1", "changed plans").
			Return(entities.PaymentTransaction{}, &usecase.RefundDeniedError{Reason: "Donations are non-refundable"})

		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/orders/ORDER_1/refund", `{"reason":"changed plans"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "Donations are non-refundable") {
			t.Fatalf("expected policy reason in body, got %s", rec.Body.String())
		}
	})

	t.Run("not completed", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.refunds.EXPECT().
			RequestRefund(gomock.Any(), "user-1", "ORDER_1", "changed plans").
			Return(entities.PaymentTransaction{}, usecase.ErrRefundNotCompleted)

		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/orders/ORDER_1/refund", `{"reason":"changed plans"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.refunds.EXPECT().
			RequestRefund(gomock.Any(), "user-1", "ORDER_1", "date clash").
			Return(entities.PaymentTransaction{OrderID: "ORDER_1", UserID: "user-1", Status: entities.PaymentStatusRefundRequested}, nil)

		rec := doJSON(t, f.router, http.MethodPost, "/v1/payments/orders/ORDER_1/refund", `{"reason":"date clash"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "refund_requested" {
			t.Fatalf("expected refund_requested, got %v", resp["status"])
		}
	})
}
