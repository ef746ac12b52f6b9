package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookStatus = errors.New("invalid payment status")
	ErrIllegalTransition    = errors.New("illegal status transition")
)

// webhookStatuses is the set the gateway may deliver. refund_requested is only
// ever set by the refund flow.
var webhookStatuses = map[entities.PaymentStatus]bool{
	entities.PaymentStatusPending:    true,
	entities.PaymentStatusProcessing: true,
	entities.PaymentStatusCompleted:  true,
	entities.PaymentStatusFailed:     true,
	entities.PaymentStatusCancelled:  true,
	entities.PaymentStatusRefunded:   true,
}

// legalTransitions is the enforced transition table. Re-applying the current
// status is always accepted so gateway webhook retries stay idempotent.
var legalTransitions = map[entities.PaymentStatus][]entities.PaymentStatus{
	entities.PaymentStatusPending: {
		entities.PaymentStatusProcessing,
		entities.PaymentStatusCompleted,
		entities.PaymentStatusFailed,
		entities.PaymentStatusCancelled,
	},
	entities.PaymentStatusProcessing: {
		entities.PaymentStatusCompleted,
		entities.PaymentStatusFailed,
		entities.PaymentStatusCancelled,
	},
	entities.PaymentStatusCompleted: {
		entities.PaymentStatusRefundRequested,
	},
	entities.PaymentStatusRefundRequested: {
		entities.PaymentStatusRefunded,
	},
}

func canTransition(from, to entities.PaymentStatus) bool {
	if from == to {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IPaymentStatusUseCase applies asynchronous status updates delivered by the
// payment gateway.
//
// On a completed payment the side-effect dispatcher updates the referenced
// entity. The status write and the reference write are two independent writes;
// dispatcher errors are logged and swallowed, never rolling back the status.

type IPaymentStatusUseCase interface {
	ApplyStatusUpdate(ctx context.Context, orderID string, newStatus entities.PaymentStatus, transactionID string, gatewayResponse json.RawMessage) (entities.PaymentTransaction, error)
}

type PaymentStatusUseCase struct {
	repo       interfaces.IPaymentTransactionRepository
	dispatcher *SideEffectDispatcher
}

var _ IPaymentStatusUseCase = (*PaymentStatusUseCase)(nil)

func NewPaymentStatusUseCase(repo interfaces.IPaymentTransactionRepository, dispatcher *SideEffectDispatcher) *PaymentStatusUseCase {
	return &PaymentStatusUseCase{repo: repo, dispatcher: dispatcher}
}

func (u *PaymentStatusUseCase) ApplyStatusUpdate(ctx context.Context, orderID string, newStatus entities.PaymentStatus, transactionID string, gatewayResponse json.RawMessage) (entities.PaymentTransaction, error) {
	log.Printf("[status][usecase] apply start order_id=%s new_status=%s", orderID, newStatus)

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentTransaction{}, ErrInvalidOrderID
	}
	if !webhookStatuses[newStatus] {
		log.Printf("[status][usecase] rejected status=%q order_id=%s", newStatus, orderID)
		return entities.PaymentTransaction{}, ErrInvalidWebhookStatus
	}
	if len(gatewayResponse) > 0 && !json.Valid(gatewayResponse) {
		log.Printf("[status][usecase] rejected gateway payload (not-json) order_id=%s", orderID)
		return entities.PaymentTransaction{}, ErrInvalidWebhookStatus
	}

	current, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[status][usecase] load failed order_id=%s err=%v", orderID, err)
		return entities.PaymentTransaction{}, err
	}
	if current.OrderID == "" {
		log.Printf("[status][usecase] order not found order_id=%s", orderID)
		return entities.PaymentTransaction{}, ErrPaymentOrderNotFound
	}

	if !canTransition(current.Status, newStatus) {
		log.Printf("[status][usecase] illegal transition order_id=%s from=%s to=%s", orderID, current.Status, newStatus)
		return entities.PaymentTransaction{}, ErrIllegalTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, orderID, newStatus, transactionID, gatewayResponse)
	if err != nil {
		log.Printf("[status][usecase] persist failed order_id=%s err=%v", orderID, err)
		return entities.PaymentTransaction{}, err
	}
	if updated.OrderID == "" {
		return entities.PaymentTransaction{}, ErrPaymentOrderNotFound
	}
	log.Printf("[status][usecase] apply success order_id=%s status=%s", updated.OrderID, updated.Status)

	if newStatus == entities.PaymentStatusCompleted && u.dispatcher != nil {
		if err := u.dispatcher.Dispatch(ctx, updated); err != nil {
			// At-least-once, non-transactional side effect: the payment stays
			// completed even when the reference update fails.
			log.Printf("[status][usecase] side effect failed order_id=%s payment_type=%s reference_id=%s err=%v", updated.OrderID, updated.PaymentType, updated.ReferenceID, err)
		}
	}

	return updated, nil
}

func parseGatewayPayload(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}
	return parsed
}
