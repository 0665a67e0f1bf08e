package payment

import "time"

// Transaction is an append-only record of money the processor reported as received.
type Transaction struct {
	id                int64
	paymentIntentID   string
	checkoutSessionID string
	amount            Amount
	currency          Currency
	status            string
	rawPayload        []byte
	createdAt         time.Time
}

func TransactionFromIntent(pi *PaymentIntent, raw []byte, now time.Time) *Transaction {
	currency := Currency(pi.Currency)
	return &Transaction{
		paymentIntentID: pi.ID,
		amount:          AmountFromMinor(pi.AmountReceived, currency),
		currency:        currency,
		status:          pi.Status,
		rawPayload:      raw,
		createdAt:       now,
	}
}

// TransactionFromSession falls back to defaultCurrency when the session does not report one.
func TransactionFromSession(cs *CheckoutSession, defaultCurrency Currency, raw []byte, now time.Time) *Transaction {
	currency := Currency(cs.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	return &Transaction{
		paymentIntentID:   cs.PaymentIntentID,
		checkoutSessionID: cs.ID,
		amount:            AmountFromMinor(cs.AmountTotal, currency),
		currency:          currency,
		status:            StatusCheckoutCompleted,
		rawPayload:        raw,
		createdAt:         now,
	}
}

func ReconstructTransaction(
	id int64,
	paymentIntentID, checkoutSessionID string,
	amount Amount,
	currency Currency,
	status string,
	rawPayload []byte,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:                id,
		paymentIntentID:   paymentIntentID,
		checkoutSessionID: checkoutSessionID,
		amount:            amount,
		currency:          currency,
		status:            status,
		rawPayload:        rawPayload,
		createdAt:         createdAt,
	}
}

func (t *Transaction) ID() int64                 { return t.id }
func (t *Transaction) PaymentIntentID() string   { return t.paymentIntentID }
func (t *Transaction) CheckoutSessionID() string { return t.checkoutSessionID }
func (t *Transaction) Amount() Amount            { return t.amount }
func (t *Transaction) Currency() Currency        { return t.currency }
func (t *Transaction) Status() string            { return t.status }
func (t *Transaction) RawPayload() []byte        { return t.rawPayload }
func (t *Transaction) CreatedAt() time.Time      { return t.createdAt }
