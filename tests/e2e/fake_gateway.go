//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bookify/internal/usecase/shared"

	"github.com/stripe/stripe-go/v82/webhook"
)

// FakeGateway stands in for Stripe and remembers every request it served.
type FakeGateway struct {
	mu       sync.Mutex
	seq      int
	intents  []shared.PaymentIntentRequest
	sessions []shared.CheckoutSessionRequest
	secrets  map[string]string
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{secrets: map[string]string{}}
}

func (g *FakeGateway) CreatePaymentIntent(_ context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntentResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := fmt.Sprintf("pi_e2e_%d", g.seq)
	secret := id + "_secret"
	g.intents = append(g.intents, req)
	g.secrets[id] = secret
	return &shared.PaymentIntentResult{ID: id, ClientSecret: secret}, nil
}

func (g *FakeGateway) ClientSecret(_ context.Context, paymentIntentID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	secret, ok := g.secrets[paymentIntentID]
	if !ok {
		return "", fmt.Errorf("no such payment intent: %s", paymentIntentID)
	}
	return secret, nil
}

func (g *FakeGateway) CreateCheckoutSession(_ context.Context, req shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := fmt.Sprintf("cs_e2e_%d", g.seq)
	g.sessions = append(g.sessions, req)
	return &shared.CheckoutSessionResult{ID: id, URL: "https://checkout.stripe.test/" + id}, nil
}

func (g *FakeGateway) Intents() []shared.PaymentIntentRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]shared.PaymentIntentRequest(nil), g.intents...)
}

func (g *FakeGateway) Sessions() []shared.CheckoutSessionRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]shared.CheckoutSessionRequest(nil), g.sessions...)
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intents = nil
	g.sessions = nil
	g.secrets = map[string]string{}
}

// SignWebhook builds the Stripe-Signature header for payload.
func SignWebhook(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}
