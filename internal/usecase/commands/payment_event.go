package commands

import (
	"context"
	"log/slog"

	"bookify/internal/domain/payment"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSignatureVerification = errs.New("webhook signature verification failed")

type PaymentEventCommands interface {
	// HandleWebhook verifies the payload and reconciles it. A verification
	// failure returns ErrSignatureVerification; otherwise the bool reports
	// whether the event was processed and may be acknowledged.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (bool, error)
	HandleEvent(ctx context.Context, event *payment.Event) bool
}

type paymentEventCommandsImpl struct {
	uow             shared.UnitOfWork
	verifier        shared.EventVerifier
	clock           clock.Clock
	defaultCurrency payment.Currency
}

func NewPaymentEventCommands(
	uow shared.UnitOfWork,
	verifier shared.EventVerifier,
	clock clock.Clock,
	cfg config.StripeConfig,
) PaymentEventCommands {
	return &paymentEventCommandsImpl{
		uow:             uow,
		verifier:        verifier,
		clock:           clock,
		defaultCurrency: payment.Currency(cfg.DefaultCurrency),
	}
}

type paymentRecordedEvent struct {
	PaymentIntentID   string `json:"payment_intent_id,omitempty"`
	CheckoutSessionID string `json:"checkout_session_id,omitempty"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
}

func (p *paymentEventCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (bool, error) {
	event, err := p.verifier.Verify(payload, signatureHeader)
	if err != nil {
		slog.WarnContext(ctx, "webhook verification failed", "error", err.Error())
		return false, errs.Mark(err, ErrSignatureVerification)
	}
	slog.DebugContext(ctx, "webhook verified", "event_id", event.ID, "event_type", string(event.Type))
	return p.HandleEvent(ctx, event), nil
}

func (p *paymentEventCommandsImpl) HandleEvent(ctx context.Context, event *payment.Event) bool {
	var err error
	switch event.Type {
	case payment.EventPaymentIntentSucceeded:
		err = p.handleIntentSucceeded(ctx, event)
	case payment.EventCheckoutSessionCompleted:
		err = p.handleSessionCompleted(ctx, event)
	default:
		slog.InfoContext(ctx, "unhandled payment event", "event_id", event.ID, "event_type", string(event.Type))
		return true
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to handle payment event",
			"event_id", event.ID,
			"event_type", string(event.Type),
			"error", err.Error())
		return false
	}
	return true
}

func (p *paymentEventCommandsImpl) handleIntentSucceeded(ctx context.Context, event *payment.Event) error {
	pi := event.PaymentIntent
	if pi == nil || pi.ID == "" {
		return errs.New("payment intent event without payment intent")
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().TransactionExistsForIntent(ctx, pi.ID)
		if err != nil {
			return err
		}
		if exists {
			slog.InfoContext(ctx, "transaction already recorded", "payment_intent_id", pi.ID)
			return nil
		}

		txn := payment.TransactionFromIntent(pi, event.Raw, p.clock.Now())
		inserted, err := tx.Transactions().Record(ctx, tx.DB(), txn)
		if err != nil {
			return err
		}
		if !inserted {
			slog.InfoContext(ctx, "transaction recorded concurrently", "payment_intent_id", pi.ID)
			return nil
		}

		slog.InfoContext(ctx, "transaction recorded",
			"payment_intent_id", pi.ID,
			"amount", txn.Amount().String(),
			"currency", txn.Currency().String())
		return shared.EnqueueEvent(ctx, tx, shared.EventPaymentRecorded, newPaymentRecordedEvent(txn), p.clock.Now())
	})
}

func (p *paymentEventCommandsImpl) handleSessionCompleted(ctx context.Context, event *payment.Event) error {
	cs := event.CheckoutSession
	if cs == nil || cs.ID == "" {
		return errs.New("checkout session event without checkout session")
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := p.recordSessionTransaction(ctx, tx, cs, event.Raw); err != nil {
			return err
		}
		// The intent's own event may have recorded the transaction first; the
		// bookings still have to flip, and only Pending ones do.
		return p.markSessionBookingsPaid(ctx, tx, cs)
	})
}

func (p *paymentEventCommandsImpl) recordSessionTransaction(ctx context.Context, tx shared.Tx, cs *payment.CheckoutSession, raw []byte) error {
	exists, err := tx.Reads().TransactionExistsForSession(ctx, cs.ID, cs.PaymentIntentID)
	if err != nil {
		return err
	}
	if exists {
		slog.InfoContext(ctx, "transaction already recorded", "session_id", cs.ID, "payment_intent_id", cs.PaymentIntentID)
		return nil
	}

	txn := payment.TransactionFromSession(cs, p.defaultCurrency, raw, p.clock.Now())
	inserted, err := tx.Transactions().Record(ctx, tx.DB(), txn)
	if err != nil {
		return err
	}
	if !inserted {
		slog.InfoContext(ctx, "transaction recorded concurrently", "session_id", cs.ID)
		return nil
	}
	return shared.EnqueueEvent(ctx, tx, shared.EventPaymentRecorded, newPaymentRecordedEvent(txn), p.clock.Now())
}

func (p *paymentEventCommandsImpl) markSessionBookingsPaid(ctx context.Context, tx shared.Tx, cs *payment.CheckoutSession) error {
	var scope *uuid.UUID
	if userID, ok := cs.UserID(); ok {
		scope = &userID
	}
	paid, err := tx.Bookings().MarkPaidByIDs(ctx, tx.DB(), cs.BookingIDs(), cs.PaymentIntentID, scope)
	if err != nil {
		return err
	}
	if len(paid) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "checkout session reconciled",
		"session_id", cs.ID,
		"payment_intent_id", cs.PaymentIntentID,
		"booking_ids", paid)

	paidEvent := bookingPaidEvent{BookingIDs: paid, PaymentIntentID: cs.PaymentIntentID, SessionID: cs.ID}
	return shared.EnqueueEvent(ctx, tx, shared.EventBookingPaid, paidEvent, p.clock.Now())
}

func newPaymentRecordedEvent(txn *payment.Transaction) paymentRecordedEvent {
	return paymentRecordedEvent{
		PaymentIntentID:   txn.PaymentIntentID(),
		CheckoutSessionID: txn.CheckoutSessionID(),
		Amount:            txn.Amount().String(),
		Currency:          txn.Currency().String(),
		Status:            txn.Status(),
	}
}
