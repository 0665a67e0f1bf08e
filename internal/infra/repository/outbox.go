package repository

import (
	"context"
	"time"

	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/pgconv"
	"bookify/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	ClaimDueOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventRetryParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateOutboxEventParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
	}

	err := r.queries.CreateOutboxEvent(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create outbox event", err)
	}

	return nil
}

// ClaimDue locks due rows with SKIP LOCKED, so concurrent relays never publish the same event.
func (r *OutboxRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.ClaimDueOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	messages := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, shared.OutboxMessage{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		})
	}
	return messages, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, runAt time.Time, maxAttempts int32) error {
	params := sqlc.MarkOutboxEventRetryParams{
		ID:          id,
		LastError:   pgconv.NullableString(lastError),
		RunAt:       pgconv.TimeToPgtype(runAt),
		MaxAttempts: maxAttempts,
	}

	if err := r.queries.MarkOutboxEventRetry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update outbox event status", err)
	}
	return nil
}
