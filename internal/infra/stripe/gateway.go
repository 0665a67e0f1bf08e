package stripe

import (
	"context"
	"net/http"

	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/shared"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

const paymentMethodCard = "card"

// Gateway talks to Stripe with the key it was built with; it never touches
// the package-level stripe.Key.
type Gateway struct {
	intents    *paymentintent.Client
	sessions   *session.Client
	successURL string
	cancelURL  string
}

func NewGateway(cfg config.StripeConfig) *Gateway {
	backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})

	return &Gateway{
		intents:    &paymentintent.Client{B: backend, Key: cfg.SecretKey},
		sessions:   &session.Client{B: backend, Key: cfg.SecretKey},
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntentResult, error) {
	params := buildPaymentIntentParams(ctx, req)

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: create payment intent")
	}
	return &shared.PaymentIntentResult{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *Gateway) ClientSecret(ctx context.Context, paymentIntentID string) (string, error) {
	params := &stripego.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.intents.Get(paymentIntentID, params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: get payment intent")
	}
	return pi.ClientSecret, nil
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, req shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
	params := buildCheckoutSessionParams(ctx, req, g.successURL, g.cancelURL)

	s, err := g.sessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: create checkout session")
	}
	return &shared.CheckoutSessionResult{ID: s.ID, URL: s.URL}, nil
}

func buildPaymentIntentParams(ctx context.Context, req shared.PaymentIntentRequest) *stripego.PaymentIntentParams {
	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(req.AmountMinor),
		Currency:           stripego.String(req.Currency),
		PaymentMethodTypes: stripego.StringSlice([]string{paymentMethodCard}),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	return params
}

func buildCheckoutSessionParams(ctx context.Context, req shared.CheckoutSessionRequest, successURL, cancelURL string) *stripego.CheckoutSessionParams {
	lineItems := make([]*stripego.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItems = append(lineItems, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripego.String(req.Currency),
				UnitAmount: stripego.Int64(item.UnitAmountMinor),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(item.Name),
				},
			},
			Quantity: stripego.Int64(item.Quantity),
		})
	}

	params := &stripego.CheckoutSessionParams{
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripego.StringSlice([]string{paymentMethodCard}),
		LineItems:          lineItems,
		SuccessURL:         stripego.String(successURL),
		CancelURL:          stripego.String(cancelURL),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}
