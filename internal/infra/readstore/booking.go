package readstore

import (
	"context"

	"bookify/internal/domain/booking"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/pgconv"
	"bookify/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Bookings, error)
	FindUserBookingByPaymentIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.FindUserBookingByPaymentIntentParams) (sqlc.Bookings, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingsByUserRow, error)
	GetUserBookingDetail(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUserBookingDetailParams) (sqlc.GetUserBookingDetailRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(sqlc.GetUserBookingDetailRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetUserBookingDetail(ctx, r.db, sqlc.GetUserBookingDetailParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindBooking(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingEntity(row)
}

func (r *BookingReadStore) FindUserBookingByPaymentIntent(ctx context.Context, paymentIntentID string, userID uuid.UUID) (*booking.Booking, error) {
	params := sqlc.FindUserBookingByPaymentIntentParams{
		StripePaymentIntentID: pgconv.StringToPgtype(paymentIntentID),
		UserID:                userID,
	}

	row, err := r.queries.FindUserBookingByPaymentIntent(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by payment intent", err)
	}
	return toBookingEntity(row)
}

func toBookingView(row sqlc.GetUserBookingDetailRow) *queries.BookingView {
	checkIn := pgconv.DateFromPgtype(row.CheckIn)
	checkOut := pgconv.DateFromPgtype(row.CheckOut)
	var nights int64 = 1
	if stay, err := booking.NewStay(checkIn, checkOut); err == nil {
		nights = stay.Nights()
	}

	return &queries.BookingView{
		ID:              row.ID,
		UserID:          row.UserID,
		RoomID:          row.RoomID,
		RoomNumber:      row.RoomNumber,
		RoomTypeName:    row.RoomTypeName,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          nights,
		TotalCostCents:  row.TotalCostCents,
		Currency:        row.Currency,
		PaymentIntentID: pgconv.StringPtrFromPgtype(row.StripePaymentIntentID),
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toBookingEntity(row sqlc.Bookings) (*booking.Booking, error) {
	stay, err := booking.NewStay(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid dates", err)
	}
	total, err := booking.NewMoney(row.TotalCostCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid total", err)
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid status", err)
	}

	return booking.Reconstruct(
		row.ID,
		row.UserID,
		row.RoomID,
		stay,
		total,
		row.Currency,
		pgconv.StringFromPgtype(row.StripePaymentIntentID),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
