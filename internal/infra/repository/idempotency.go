package repository

import (
	"context"
	"time"

	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	DeleteProcessingIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteProcessingIdempotencyKeyParams) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
	}
}

// TryInsert reports whether this call created the key.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	rows, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return rows > 0, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, bookingID int64) error {
	params := sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:             key,
		UserID:          userID,
		ResultBookingID: pgtype.Int8{Int64: bookingID, Valid: true},
	}

	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

// ClaimExpired takes over a key whose previous attempt expired.
func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	rows, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}

	return rows > 0, nil
}

// Release drops a key still in processing so a failed attempt can be retried
// with the same key. Completed keys are left alone.
func (r *IdempotencyRepository) Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID) (bool, error) {
	rows, err := r.queries.DeleteProcessingIdempotencyKey(ctx, tx, sqlc.DeleteProcessingIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release idempotency key", err)
	}

	return rows > 0, nil
}
