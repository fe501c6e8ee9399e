package billing

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	appconfig "github.com/semprecheioapp/semprecheio-api/internal/config"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// ErrDisabled is returned when no payment provider is configured.
var ErrDisabled = httperr.ErrBusiness("billing_disabled")

// Checkout builds Mercado Pago payment links for subscription plans.
type Checkout struct {
	store       storage.Storage
	preferences preference.Client
}

// NewCheckout returns nil when no access token is configured; billing
// endpoints then answer 503 instead of calling out with bad credentials.
func NewCheckout(store storage.Storage, cfg *appconfig.Config) (*Checkout, error) {
	if cfg.MercadoPagoToken == "" {
		return nil, nil
	}

	mpCfg, err := mpconfig.New(cfg.MercadoPagoToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Checkout{
		store:       store,
		preferences: preference.NewClient(mpCfg),
	}, nil
}

type CheckoutLink struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// CreateLink creates a payment preference for one plan on behalf of one
// tenant. The external reference ties the eventual payment back to the
// client and plan.
func (c *Checkout) CreateLink(ctx context.Context, clientID, planID string) (*CheckoutLink, error) {
	if c == nil {
		return nil, ErrDisabled
	}

	plan, err := c.store.GetSubscriptionPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	client, err := c.store.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	req := preference.Request{
		ExternalReference: fmt.Sprintf("%s:%s", client.ID, plan.ID),
		Items: []preference.ItemRequest{
			{
				ID:         plan.ID,
				Title:      fmt.Sprintf("Plano %s", plan.Name),
				Quantity:   1,
				CurrencyID: client.Currency,
				UnitPrice:  float64(plan.Price) / 100,
			},
		},
		Payer: &preference.PayerRequest{
			Name:  client.Name,
			Email: client.Email,
		},
	}

	resp, err := c.preferences.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &CheckoutLink{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
