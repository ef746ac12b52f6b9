package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway creates checkout preferences through the Mercado Pago
// SDK. The preference init point is the redirect URL returned to the client.

type MercadoPagoGateway struct {
	client preference.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, orderID string, amount float64, currency, description string) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mercadopago create start order_id=%s amount=%.2f currency=%s", orderID, amount, currency)

	title := description
	if title == "" {
		title = orderID
	}

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: orderID,
		Items: []preference.ItemRequest{
			{
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: currency,
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] mercadopago create failed order_id=%s err=%v", orderID, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago response marshal failed order_id=%s err=%v", orderID, err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] mercadopago create success order_id=%s provider_order_id=%s", orderID, resp.ID)
	return resp.ID, resp.InitPoint, b, nil
}
