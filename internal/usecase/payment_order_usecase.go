package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderUserID       = errors.New("invalid user id")
	ErrInvalidOrderAmount       = errors.New("invalid amount")
	ErrInvalidPaymentType       = errors.New("invalid payment_type")
	ErrInvalidReferenceID       = errors.New("invalid reference_id")
	ErrInvalidReferenceType     = errors.New("invalid reference_type")
	ErrInvalidOrderID           = errors.New("invalid order id")
	ErrPaymentOrderNotFound     = errors.New("payment order not found")
	ErrPaymentGatewayNotBuilt   = errors.New("payment gateway not configured")
	ErrPaymentRepoNotConfigured = errors.New("payment transaction repository not configured")
)

// CreateOrderCommand carries the validated client intent to pay.
type CreateOrderCommand struct {
	UserID        string
	Amount        float64
	Currency      string
	PaymentType   entities.PaymentType
	ReferenceID   string
	ReferenceType entities.ReferenceType
	Description   string
}

// IPaymentOrderUseCase encapsulates the payment order manager.
//
// CreateOrder registers the order with the external gateway, persists the
// transaction in pending state, and returns the checkout redirect URL.
// Reads are always scoped to the owning user: a transaction owned by someone
// else is reported as not found.

type IPaymentOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.PaymentTransaction, string, error)
	GetByOrderID(ctx context.Context, userID, orderID string) (entities.PaymentTransaction, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.PaymentTransaction, error)
}

type PaymentOrderUseCase struct {
	repo    interfaces.IPaymentTransactionRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentOrderUseCase = (*PaymentOrderUseCase)(nil)

func NewPaymentOrderUseCase(repo interfaces.IPaymentTransactionRepository, gateway interfaces.IPaymentGateway) *PaymentOrderUseCase {
	return &PaymentOrderUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentOrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.PaymentTransaction, string, error) {
	log.Printf("[order][usecase] create start user_id=%s payment_type=%s amount=%.2f", cmd.UserID, cmd.PaymentType, cmd.Amount)

	cmd.UserID = strings.TrimSpace(cmd.UserID)
	cmd.ReferenceID = strings.TrimSpace(cmd.ReferenceID)
	if cmd.UserID == "" {
		return entities.PaymentTransaction{}, "", ErrInvalidOrderUserID
	}
	if cmd.Amount <= 0 {
		return entities.PaymentTransaction{}, "", ErrInvalidOrderAmount
	}
	if !cmd.PaymentType.Valid() {
		log.Printf("[order][usecase] rejected payment_type=%q user_id=%s", cmd.PaymentType, cmd.UserID)
		return entities.PaymentTransaction{}, "", ErrInvalidPaymentType
	}
	if cmd.ReferenceID == "" {
		return entities.PaymentTransaction{}, "", ErrInvalidReferenceID
	}
	if !cmd.ReferenceType.Valid() {
		log.Printf("[order][usecase] rejected reference_type=%q user_id=%s", cmd.ReferenceType, cmd.UserID)
		return entities.PaymentTransaction{}, "", ErrInvalidReferenceType
	}
	if cmd.Currency == "" {
		cmd.Currency = entities.DefaultCurrency
	}
	if u.gateway == nil {
		log.Printf("[order][usecase] gateway not configured user_id=%s", cmd.UserID)
		return entities.PaymentTransaction{}, "", ErrPaymentGatewayNotBuilt
	}
	if u.repo == nil {
		log.Printf("[order][usecase] repository not configured user_id=%s", cmd.UserID)
		return entities.PaymentTransaction{}, "", ErrPaymentRepoNotConfigured
	}

	orderID := NewOrderID()
	log.Printf("[order][usecase] calling gateway order_id=%s user_id=%s", orderID, cmd.UserID)
	_, paymentURL, providerResp, err := u.gateway.CreateOrder(ctx, orderID, cmd.Amount, cmd.Currency, cmd.Description)
	if err != nil {
		log.Printf("[order][usecase] gateway create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentTransaction{}, "", err
	}

	now := time.Now().UTC()
	tx := entities.PaymentTransaction{
		OrderID:            orderID,
		UserID:             cmd.UserID,
		Amount:             cmd.Amount,
		Currency:           cmd.Currency,
		PaymentType:        cmd.PaymentType,
		ReferenceID:        cmd.ReferenceID,
		ReferenceType:      cmd.ReferenceType,
		Description:        cmd.Description,
		Status:             entities.PaymentStatusPending,
		GatewayResponseRaw: providerResp,
		GatewayResponse:    parseGatewayPayload(providerResp),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[order][usecase] repository create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentTransaction{}, "", err
	}
	log.Printf("[order][usecase] create success order_id=%s user_id=%s status=%s", created.OrderID, created.UserID, created.Status)
	return created, paymentURL, nil
}

func (u *PaymentOrderUseCase) GetByOrderID(ctx context.Context, userID, orderID string) (entities.PaymentTransaction, error) {
	userID = strings.TrimSpace(userID)
	orderID = strings.TrimSpace(orderID)
	if userID == "" {
		return entities.PaymentTransaction{}, ErrInvalidOrderUserID
	}
	if orderID == "" {
		return entities.PaymentTransaction{}, ErrInvalidOrderID
	}

	tx, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	// Ownership mismatch is reported as not found so order ids are not
	// probeable across users.
	if tx.OrderID == "" || tx.UserID != userID {
		return entities.PaymentTransaction{}, ErrPaymentOrderNotFound
	}
	return tx, nil
}

func (u *PaymentOrderUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.PaymentTransaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidOrderUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

// NewOrderID mints the external-facing correlation key: millisecond timestamp
// plus a random token. Collisions are treated as negligible, and the
// conditional create in the repository refuses an overwrite regardless.
func NewOrderID() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return fmt.Sprintf("ORDER_%d_%s", time.Now().UTC().UnixMilli(), token)
}
