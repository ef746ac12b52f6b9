package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase/interfaces"
)

var (
	ErrRefundNotCompleted      = errors.New("only completed payments can be refunded")
	ErrRefundReferenceNotFound = errors.New("payment reference not found")
	ErrInvalidRefundReason     = errors.New("invalid refund reason")
)

const storeOrderRefundWindow = 24 * time.Hour

// RefundDeniedError carries the policy reason returned to the client.
type RefundDeniedError struct {
	Reason string
}

func (e *RefundDeniedError) Error() string {
	return e.Reason
}

// RefundDecision is the outcome of the eligibility evaluation.
type RefundDecision struct {
	Allowed bool
	Reason  string
}

// IRefundUseCase gates refund requests by the per-payment-type policy.
//
// RequestRefund verifies ownership and completed status, evaluates
// eligibility, and on success transitions the transaction to refund_requested
// with the reason stored under gateway_response.refund_reason. Actual money
// movement happens out of band once the gateway confirms the refund.

type IRefundUseCase interface {
	RequestRefund(ctx context.Context, userID, orderID, reason string) (entities.PaymentTransaction, error)
}

type RefundUseCase struct {
	repo          interfaces.IPaymentTransactionRepository
	bookings      interfaces.IBookingRepository
	registrations interfaces.IEventRegistrationRepository
}

var _ IRefundUseCase = (*RefundUseCase)(nil)

func NewRefundUseCase(repo interfaces.IPaymentTransactionRepository, bookings interfaces.IBookingRepository, registrations interfaces.IEventRegistrationRepository) *RefundUseCase {
	return &RefundUseCase{repo: repo, bookings: bookings, registrations: registrations}
}

func (u *RefundUseCase) RequestRefund(ctx context.Context, userID, orderID, reason string) (entities.PaymentTransaction, error) {
	log.Printf("[refund][usecase] request start order_id=%s user_id=%s", orderID, userID)

	userID = strings.TrimSpace(userID)
	orderID = strings.TrimSpace(orderID)
	reason = strings.TrimSpace(reason)
	if userID == "" {
		return entities.PaymentTransaction{}, ErrInvalidOrderUserID
	}
	if orderID == "" {
		return entities.PaymentTransaction{}, ErrInvalidOrderID
	}
	if reason == "" {
		return entities.PaymentTransaction{}, ErrInvalidRefundReason
	}

	tx, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.OrderID == "" || tx.UserID != userID {
		log.Printf("[refund][usecase] order not found or not owned order_id=%s user_id=%s", orderID, userID)
		return entities.PaymentTransaction{}, ErrPaymentOrderNotFound
	}
	if tx.Status != entities.PaymentStatusCompleted {
		log.Printf("[refund][usecase] order not completed order_id=%s status=%s", orderID, tx.Status)
		return entities.PaymentTransaction{}, ErrRefundNotCompleted
	}

	decision, err := u.Evaluate(ctx, tx)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if !decision.Allowed {
		log.Printf("[refund][usecase] denied order_id=%s reason=%q", orderID, decision.Reason)
		return entities.PaymentTransaction{}, &RefundDeniedError{Reason: decision.Reason}
	}

	payload := withRefundReason(tx, reason)
	updated, err := u.repo.UpdateStatus(ctx, orderID, entities.PaymentStatusRefundRequested, tx.TransactionID, payload)
	if err != nil {
		log.Printf("[refund][usecase] persist failed order_id=%s err=%v", orderID, err)
		return entities.PaymentTransaction{}, err
	}
	if updated.OrderID == "" {
		return entities.PaymentTransaction{}, ErrPaymentOrderNotFound
	}
	log.Printf("[refund][usecase] request success order_id=%s status=%s", updated.OrderID, updated.Status)
	return updated, nil
}

// Evaluate applies the refund eligibility policy for a completed transaction.
// The caller has already verified ownership and completed status.
func (u *RefundUseCase) Evaluate(ctx context.Context, tx entities.PaymentTransaction) (RefundDecision, error) {
	now := time.Now().UTC()

	switch tx.PaymentType {
	case entities.PaymentTypeBooking:
		booking, err := u.bookings.GetByID(ctx, tx.ReferenceID)
		if err != nil {
			return RefundDecision{}, err
		}
		if booking.ID == "" {
			return RefundDecision{}, ErrRefundReferenceNotFound
		}
		if !booking.ScheduledDate.After(now) {
			return RefundDecision{Reason: "Cannot refund past bookings"}, nil
		}
		return RefundDecision{Allowed: true}, nil

	case entities.PaymentTypeEventRegistration:
		registration, err := u.registrations.GetByID(ctx, tx.ReferenceID)
		if err != nil {
			return RefundDecision{}, err
		}
		if registration.ID == "" {
			return RefundDecision{}, ErrRefundReferenceNotFound
		}
		if !registration.EventDate.After(now) {
			return RefundDecision{Reason: "Cannot refund past events"}, nil
		}
		return RefundDecision{Allowed: true}, nil

	case entities.PaymentTypeStoreOrder:
		if now.Sub(tx.CreatedAt) > storeOrderRefundWindow {
			return RefundDecision{Reason: "Refund window expired for store orders"}, nil
		}
		return RefundDecision{Allowed: true}, nil

	case entities.PaymentTypeDonation:
		return RefundDecision{Reason: "Donations are non-refundable"}, nil

	default:
		return RefundDecision{Reason: "Refund not supported for this payment type"}, nil
	}
}

// withRefundReason merges refund_reason into the stored gateway payload,
// preserving whatever the gateway reported earlier.
func withRefundReason(tx entities.PaymentTransaction, reason string) json.RawMessage {
	payload := map[string]interface{}{}
	for k, v := range tx.GatewayResponse {
		payload[k] = v
	}
	payload["refund_reason"] = reason

	b, err := json.Marshal(payload)
	if err != nil {
		b, _ = json.Marshal(map[string]string{"refund_reason": reason})
	}
	return b
}
