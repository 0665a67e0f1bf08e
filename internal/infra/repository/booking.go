package repository

import (
	"context"

	"bookify/internal/domain/booking"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
	MarkBookingsPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingsPaidParams) ([]int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	params := sqlc.CreateBookingParams{
		UserID:                b.UserID(),
		RoomID:                b.RoomID(),
		CheckIn:               pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:              pgconv.DateToPgtype(b.Stay().CheckOut()),
		TotalCostCents:        b.Total().Cents(),
		Currency:              b.Currency(),
		StripePaymentIntentID: pgconv.NullableString(b.PaymentIntentID()),
		Status:                b.Status().String(),
		CreatedAt:             pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	id, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	if err := r.queries.UpdateBookingStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}

func (r *BookingRepository) MarkPaidByIDs(ctx context.Context, tx sqlc.DBTX, ids []int64, paymentIntentID string, userID *uuid.UUID) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := sqlc.MarkBookingsPaidParams{
		PaymentIntentID: paymentIntentID,
		Ids:             ids,
	}
	if userID != nil {
		params.UserID = pgconv.UUIDToPgtype(*userID)
	} else {
		params.UserID = pgtype.UUID{Valid: false}
	}

	updated, err := r.queries.MarkBookingsPaid(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to mark bookings paid", err)
	}
	return updated, nil
}
