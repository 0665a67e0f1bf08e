package stripe

import (
	"encoding/json"
	"time"

	"bookify/internal/domain/payment"
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// WebhookVerifier checks the Stripe-Signature header and maps the event onto
// the processor-agnostic payment.Event.
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewWebhookVerifier(cfg config.StripeConfig) *WebhookVerifier {
	tolerance := cfg.WebhookTolerance
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &WebhookVerifier{secret: cfg.WebhookSecret, tolerance: tolerance}
}

func (v *WebhookVerifier) Verify(payload []byte, signatureHeader string) (*payment.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "stripe: verify webhook")
	}

	return toPaymentEvent(event, payload)
}

func toPaymentEvent(event stripego.Event, raw []byte) (*payment.Event, error) {
	out := &payment.Event{
		ID:   event.ID,
		Type: payment.EventType(event.Type),
		Raw:  raw,
	}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case payment.EventPaymentIntentSucceeded:
		var pi stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Wrap(err, "stripe: decode payment intent")
		}
		out.PaymentIntent = &payment.PaymentIntent{
			ID:             pi.ID,
			AmountReceived: pi.AmountReceived,
			Currency:       string(pi.Currency),
			Status:         string(pi.Status),
			ClientSecret:   pi.ClientSecret,
			Metadata:       pi.Metadata,
		}

	case payment.EventCheckoutSessionCompleted:
		var cs stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, errs.Wrap(err, "stripe: decode checkout session")
		}
		var intentID string
		if cs.PaymentIntent != nil {
			intentID = cs.PaymentIntent.ID
		}
		out.CheckoutSession = &payment.CheckoutSession{
			ID:              cs.ID,
			PaymentIntentID: intentID,
			AmountTotal:     cs.AmountTotal,
			Currency:        string(cs.Currency),
			URL:             cs.URL,
			Metadata:        cs.Metadata,
		}
	}

	return out, nil
}
