//go:build unit

package stripe

import (
	"context"
	"testing"

	"bookify/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaymentIntentParams(t *testing.T) {
	params := buildPaymentIntentParams(context.Background(), shared.PaymentIntentRequest{
		AmountMinor:    18000,
		Currency:       "usd",
		Metadata:       map[string]string{"roomId": "1", "userId": "u"},
		IdempotencyKey: "key-1",
	})

	assert.Equal(t, int64(18000), *params.Amount)
	assert.Equal(t, "usd", *params.Currency)
	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])
	assert.Equal(t, "1", params.Metadata["roomId"])
	assert.Equal(t, "key-1", *params.IdempotencyKey)
}

func TestBuildCheckoutSessionParams(t *testing.T) {
	params := buildCheckoutSessionParams(context.Background(), shared.CheckoutSessionRequest{
		Currency: "jpy",
		LineItems: []shared.CheckoutLineItem{
			{Name: "Room 101 - Standard", UnitAmountMinor: 200, Quantity: 1},
		},
		Metadata: map[string]string{"bookingIds": "1,2"},
	}, "https://example.com/ok?session_id={CHECKOUT_SESSION_ID}", "https://example.com/cancel")

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "https://example.com/ok?session_id={CHECKOUT_SESSION_ID}", *params.SuccessURL)
	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, "Room 101 - Standard", *item.PriceData.ProductData.Name)
	assert.Equal(t, int64(200), *item.PriceData.UnitAmount)
	assert.Equal(t, "jpy", *item.PriceData.Currency)
	assert.Equal(t, int64(1), *item.Quantity)
	assert.Equal(t, "1,2", params.Metadata["bookingIds"])
}
