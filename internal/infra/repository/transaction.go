package repository

import (
	"context"

	"bookify/internal/domain/payment"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/pgconv"
)

type TransactionWriteQueries interface {
	InsertTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTransactionParams) (int64, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
	}
}

// Record relies on the unique indexes over intent and session ids; a conflict is reported as false.
func (r *TransactionRepository) Record(ctx context.Context, tx sqlc.DBTX, t *payment.Transaction) (bool, error) {
	params := sqlc.InsertTransactionParams{
		PaymentIntentID:   pgconv.NullableString(t.PaymentIntentID()),
		CheckoutSessionID: pgconv.NullableString(t.CheckoutSessionID()),
		Amount:            pgconv.NumericFromScaled(t.Amount().Minor(), t.Amount().Decimals()),
		Currency:          t.Currency().String(),
		Status:            t.Status(),
		RawPayload:        string(t.RawPayload()),
		CreatedAt:         pgconv.TimeToPgtype(t.CreatedAt()),
	}

	rows, err := r.queries.InsertTransaction(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert transaction", err)
	}
	return rows > 0, nil
}
