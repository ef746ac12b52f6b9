package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"temple_seva/internal/adapter/http/dto/request"
	"temple_seva/internal/adapter/http/dto/response"
	"temple_seva/internal/adapter/http/middleware"
	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase"
	"temple_seva/pkg"

	"github.com/gin-gonic/gin"
	"github.com/razorpay/razorpay-go/utils"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment order lifecycle.

type PaymentHandler struct {
	orders  usecase.IPaymentOrderUseCase
	status  usecase.IPaymentStatusUseCase
	refunds usecase.IRefundUseCase
}

func NewPaymentHandler(orders usecase.IPaymentOrderUseCase, status usecase.IPaymentStatusUseCase, refunds usecase.IRefundUseCase) *PaymentHandler {
	return &PaymentHandler{orders: orders, status: status, refunds: refunds}
}

// CreateOrder creates a pending payment transaction and returns the checkout
// redirect URL for the client to continue the external payment flow.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID := middleware.UserID(c)
	log.Printf("[payment][handler] create-order start user_id=%s", userID)

	var payload request.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload user_id=%s err=%v", userID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, paymentURL, err := h.orders.CreateOrder(c.Request.Context(), usecase.CreateOrderCommand{
		UserID:        userID,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
		PaymentType:   entities.PaymentType(payload.PaymentType),
		ReferenceID:   payload.ReferenceID,
		ReferenceType: entities.ReferenceType(payload.ReferenceType),
		Description:   payload.Description,
	})
	if err != nil {
		log.Printf("[payment][handler] create-order failed user_id=%s err=%v", userID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order success user_id=%s order_id=%s", userID, created.OrderID)

	c.JSON(http.StatusCreated, response.FromPaymentTransactionWithURL(created, paymentURL))
}

// GetOrder returns a single transaction scoped to the requesting user.
func (h *PaymentHandler) GetOrder(c *gin.Context) {
	userID := middleware.UserID(c)
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] get-order start user_id=%s order_id=%s", userID, orderID)

	tx, err := h.orders.GetByOrderID(c.Request.Context(), userID, orderID)
	if err != nil {
		log.Printf("[payment][handler] get-order failed user_id=%s order_id=%s err=%v", userID, orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx))
}

// ListOrders returns the requesting user's payment history.
func (h *PaymentHandler) ListOrders(c *gin.Context) {
	userID := middleware.UserID(c)
	log.Printf("[payment][handler] list-orders start user_id=%s", userID)

	txs, err := h.orders.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[payment][handler] list-orders failed user_id=%s err=%v", userID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentTransactions(txs))
}

// Webhook receives asynchronous status updates from the payment gateway.
//
// When RAZORPAY_WEBHOOK_SECRET is configured the raw body signature is
// verified first; without a secret (local/dev) the payload is trusted.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	if secret := os.Getenv("RAZORPAY_WEBHOOK_SECRET"); secret != "" {
		signature := c.GetHeader("X-Razorpay-Signature")
		if !utils.VerifyWebhookSignature(string(raw), signature, secret) {
			log.Printf("[payment][handler] webhook signature rejected")
			appErr := pkg.NewDomainErrorSimple("WEBHOOK_SIGNATURE_INVALID", "Invalid webhook signature", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	var payload request.PaymentWebhookRequest
	if err := json.Unmarshal(raw, &payload); err != nil || payload.OrderID == "" || payload.Status == "" {
		log.Printf("[payment][handler] invalid webhook payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook start order_id=%s status=%s", payload.OrderID, payload.Status)

	updated, err := h.status.ApplyStatusUpdate(c.Request.Context(), payload.OrderID, entities.PaymentStatus(payload.Status), payload.TransactionID, payload.GatewayResponse)
	if err != nil {
		log.Printf("[payment][handler] webhook failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook success order_id=%s status=%s", updated.OrderID, updated.Status)

	c.JSON(http.StatusOK, response.FromPaymentTransaction(updated))
}

// RequestRefund gates a refund request by the per-payment-type policy.
func (h *PaymentHandler) RequestRefund(c *gin.Context) {
	userID := middleware.UserID(c)
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] refund start user_id=%s order_id=%s", userID, orderID)

	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.refunds.RequestRefund(c.Request.Context(), userID, orderID, payload.Reason)
	if err != nil {
		log.Printf("[payment][handler] refund failed user_id=%s order_id=%s err=%v", userID, orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success user_id=%s order_id=%s status=%s", userID, orderID, updated.Status)

	c.JSON(http.StatusOK, response.FromPaymentTransaction(updated))
}

func mapPaymentError(err error) *pkg.AppError {
	var denied *usecase.RefundDeniedError
	if errors.As(err, &denied) {
		return pkg.NewDomainErrorSimple("REFUND_NOT_ALLOWED", denied.Reason, http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidOrderUserID),
		errors.Is(err, usecase.ErrInvalidOrderAmount),
		errors.Is(err, usecase.ErrInvalidPaymentType),
		errors.Is(err, usecase.ErrInvalidReferenceID),
		errors.Is(err, usecase.ErrInvalidReferenceType),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidWebhookStatus),
		errors.Is(err, usecase.ErrInvalidRefundReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRefundNotCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_COMPLETED", "Only completed payments can be refunded", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Payment order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefundReferenceNotFound):
		return pkg.NewDomainErrorSimple("REFERENCE_NOT_FOUND", "Payment reference not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
