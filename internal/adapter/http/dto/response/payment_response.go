package response

import (
	"time"

	"temple_seva/internal/domain/entities"
)

type PaymentTransactionResponse struct {
	OrderID       string  `json:"order_id"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentType   string  `json:"payment_type"`
	ReferenceID   string  `json:"reference_id"`
	ReferenceType string  `json:"reference_type"`
	Description   string  `json:"description,omitempty"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id,omitempty"`

	GatewayResponse map[string]interface{} `json:"gateway_response,omitempty"`

	PaymentURL string `json:"payment_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPaymentTransaction(tx entities.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		OrderID:         tx.OrderID,
		UserID:          tx.UserID,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		PaymentType:     string(tx.PaymentType),
		ReferenceID:     tx.ReferenceID,
		ReferenceType:   string(tx.ReferenceType),
		Description:     tx.Description,
		Status:          string(tx.Status),
		TransactionID:   tx.TransactionID,
		GatewayResponse: tx.GatewayResponse,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

// FromPaymentTransactionWithURL attaches the checkout redirect handle
// returned on order creation.
func FromPaymentTransactionWithURL(tx entities.PaymentTransaction, paymentURL string) PaymentTransactionResponse {
	res := FromPaymentTransaction(tx)
	res.PaymentURL = paymentURL
	return res
}

func FromPaymentTransactions(txs []entities.PaymentTransaction) []PaymentTransactionResponse {
	out := make([]PaymentTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromPaymentTransaction(tx))
	}
	return out
}
