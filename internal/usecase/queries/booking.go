package queries

import (
	"context"

	"github.com/google/uuid"

	"bookify/internal/infra"
	"bookify/internal/pkg/errs"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrBookingQueryFailed = errs.New("booking query failed")
)

type BookingQueries interface {
	// ListByUser returns the user's bookings, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	// GetByID hides bookings owned by other users behind ErrBookingNotFound.
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*BookingView, error)
}

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	bookings, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQueryFailed)
	}
	return bookings, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*BookingView, error) {
	b, err := q.readStore.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingQueryFailed)
	}
	return b, nil
}
