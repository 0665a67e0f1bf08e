package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/config"
	"bookify/internal/usecase/shared"
)

const (
	retryBase = 2 * time.Second
	retryMax  = 5 * time.Minute
)

// OutboxRelay moves committed outbox events to the broker. Delivery is
// at-least-once: a crash between publish and MarkSent republishes the event.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	topicPrefix string
	interval    time.Duration
	batch       int32
	maxAttempts int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clock clock.Clock, cfg config.KafkaConfig) *OutboxRelay {
	return &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clock,
		topicPrefix: cfg.TopicPrefix,
		interval:    cfg.RelayInterval,
		batch:       cfg.RelayBatch,
		maxAttempts: cfg.MaxAttempts,
	}
}

func (r *OutboxRelay) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(runCtx)
	}()

	slog.Info("outbox relay started", "interval", r.interval.String(), "batch", r.batch)
	return nil
}

func (r *OutboxRelay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.publisher.Close()
}

func (r *OutboxRelay) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay pass failed", "error", err.Error())
			}
		}
	}
}

// RunOnce publishes one batch of due events and returns how many were sent.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		messages, err := tx.Outbox().ClaimDue(ctx, tx.DB(), r.batch)
		if err != nil {
			return err
		}

		for _, m := range messages {
			if pubErr := r.publisher.Publish(ctx, r.topic(m.Topic), m.ID.String(), m.Payload); pubErr != nil {
				runAt := r.clock.Now().Add(retryDelay(m.Attempts))
				slog.Warn("outbox publish failed",
					"event_id", m.ID,
					"kind", m.Kind,
					"attempts", m.Attempts+1,
					"error", pubErr.Error())
				if err := tx.Outbox().MarkRetry(ctx, tx.DB(), m.ID, pubErr.Error(), runAt, r.maxAttempts); err != nil {
					return err
				}
				continue
			}

			if err := tx.Outbox().MarkSent(ctx, tx.DB(), m.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

func (r *OutboxRelay) topic(t string) string {
	if r.topicPrefix == "" {
		return t
	}
	return r.topicPrefix + "." + t
}

func retryDelay(attempts int32) time.Duration {
	if attempts > 16 {
		return retryMax
	}
	d := retryBase << attempts
	if d > retryMax {
		return retryMax
	}
	return d
}
