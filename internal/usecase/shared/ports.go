package shared

import (
	"context"

	"bookify/internal/domain/cart"
	"bookify/internal/domain/payment"

	"github.com/google/uuid"
)

type PaymentIntentRequest struct {
	AmountMinor    int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

type PaymentIntentResult struct {
	ID           string
	ClientSecret string
}

type CheckoutLineItem struct {
	Name            string
	UnitAmountMinor int64
	Quantity        int64
}

type CheckoutSessionRequest struct {
	Currency  string
	LineItems []CheckoutLineItem
	Metadata  map[string]string
}

type CheckoutSessionResult struct {
	ID  string
	URL string
}

// PaymentGateway is the outbound side of the payment processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntentResult, error)
	ClientSecret(ctx context.Context, paymentIntentID string) (string, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResult, error)
}

// EventVerifier authenticates and decodes an inbound processor notification.
type EventVerifier interface {
	Verify(payload []byte, signatureHeader string) (*payment.Event, error)
}

// CartStore keeps per-user cart state with an idle expiry.
type CartStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error
	Clear(ctx context.Context, userID uuid.UUID) error
	// LastSearch returns nil without error when nothing was remembered.
	LastSearch(ctx context.Context, userID uuid.UUID) (*cart.LastSearch, error)
	RememberSearch(ctx context.Context, userID uuid.UUID, search cart.LastSearch) error
}
