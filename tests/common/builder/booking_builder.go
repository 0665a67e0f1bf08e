//go:build unit || e2e

package builder

import (
	"time"

	"bookify/internal/domain/booking"
	reqdto "bookify/internal/handler/dto/request"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              int64
	UserID          uuid.UUID
	RoomID          int64
	RoomNumber      string
	RoomTypeName    string
	CheckIn         time.Time
	CheckOut        time.Time
	TotalCents      int64
	Currency        string
	PaymentIntentID string
	Status          booking.Status
	PromoCode       *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              1,
		UserID:          uuid.New(),
		RoomID:          1,
		RoomNumber:      "101",
		RoomTypeName:    "Standard",
		CheckIn:         time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		TotalCents:      20000,
		Currency:        "usd",
		PaymentIntentID: "pi_test_123",
		Status:          booking.StatusPending,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithRoomID(roomID int64) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithTotal(cents int64) *BookingBuilder {
	b.TotalCents = cents
	return b
}

func (b *BookingBuilder) WithPaymentIntent(id string) *BookingBuilder {
	b.PaymentIntentID = id
	return b
}

func (b *BookingBuilder) WithPromoCode(code string) *BookingBuilder {
	b.PromoCode = &code
	return b
}

func (b *BookingBuilder) AsPaid() *BookingBuilder {
	b.Status = booking.StatusPaid
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(b.TotalCents)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		b.ID, b.UserID, b.RoomID, stay, total,
		b.Currency, b.PaymentIntentID, b.Status,
		FixedNow, FixedNow,
	), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var pi *string
	if b.PaymentIntentID != "" {
		id := b.PaymentIntentID
		pi = &id
	}
	nights := int64(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	return &queries.BookingView{
		ID:              b.ID,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		RoomTypeName:    b.RoomTypeName,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          nights,
		TotalCostCents:  b.TotalCents,
		Currency:        b.Currency,
		PaymentIntentID: pi,
		Status:          b.Status.String(),
		CreatedAt:       FixedNow,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn.Format(reqdto.DateLayout),
		CheckOut:  b.CheckOut.Format(reqdto.DateLayout),
		Currency:  b.Currency,
		PromoCode: b.PromoCode,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:                    b.ID,
		UserID:                b.UserID,
		RoomID:                b.RoomID,
		CheckIn:               pgtype.Date{Time: b.CheckIn, Valid: true},
		CheckOut:              pgtype.Date{Time: b.CheckOut, Valid: true},
		TotalCostCents:        b.TotalCents,
		Currency:              b.Currency,
		StripePaymentIntentID: pgtype.Text{String: b.PaymentIntentID, Valid: b.PaymentIntentID != ""},
		Status:                b.Status.String(),
		CreatedAt:             pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt:             pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

func (b *BookingBuilder) BuildDetailRow() sqlc.GetUserBookingDetailRow {
	infra := b.BuildInfra()
	return sqlc.GetUserBookingDetailRow{
		ID:                    infra.ID,
		UserID:                infra.UserID,
		RoomID:                infra.RoomID,
		CheckIn:               infra.CheckIn,
		CheckOut:              infra.CheckOut,
		TotalCostCents:        infra.TotalCostCents,
		Currency:              infra.Currency,
		StripePaymentIntentID: infra.StripePaymentIntentID,
		Status:                infra.Status,
		CreatedAt:             infra.CreatedAt,
		RoomNumber:            b.RoomNumber,
		RoomTypeName:          b.RoomTypeName,
	}
}
