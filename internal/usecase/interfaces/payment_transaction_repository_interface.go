package interfaces

import (
	"context"
	"encoding/json"

	"temple_seva/internal/domain/entities"
)

// IPaymentTransactionRepository abstracts DynamoDB persistence for
// PaymentTransaction.
//
// UpdateStatus must return the zero value (not an error) when the order does
// not exist, matching the Get* conventions; transactionID and gatewayResponse
// are only written when non-empty so a webhook without them never blanks
// previously stored values.

type IPaymentTransactionRepository interface {
	Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.PaymentTransaction, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID string, gatewayResponse json.RawMessage) (entities.PaymentTransaction, error)
}
