package shared

import (
	"context"
	"encoding/json"
	"time"
)

const (
	EventBookingCreated  = "booking.created"
	EventBookingPaid     = "booking.paid"
	EventPaymentRecorded = "payment.recorded"
)

// EnqueueEvent stores the event in the outbox within tx; the relay publishes it after commit.
func EnqueueEvent(ctx context.Context, tx Tx, kind string, payload any, now time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), kind, kind, data, now)
}
