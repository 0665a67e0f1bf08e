package readstore

import (
	"context"

	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
)

type TransactionReadQueries interface {
	TransactionExistsByPaymentIntent(ctx context.Context, db sqlc.DBTX, paymentIntentID string) (bool, error)
	TransactionExistsBySession(ctx context.Context, db sqlc.DBTX, arg sqlc.TransactionExistsBySessionParams) (bool, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) ExistsForIntent(ctx context.Context, paymentIntentID string) (bool, error) {
	exists, err := r.queries.TransactionExistsByPaymentIntent(ctx, r.db, paymentIntentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check transaction by payment intent", err)
	}
	return exists, nil
}

// ExistsForSession matches on the session id, or on the intent id when one is given.
func (r *TransactionReadStore) ExistsForSession(ctx context.Context, checkoutSessionID, paymentIntentID string) (bool, error) {
	params := sqlc.TransactionExistsBySessionParams{
		CheckoutSessionID: checkoutSessionID,
		PaymentIntentID:   paymentIntentID,
	}

	exists, err := r.queries.TransactionExistsBySession(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check transaction by session", err)
	}
	return exists, nil
}
