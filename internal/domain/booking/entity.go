package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrInvalidRoom   = errors.New("booking must reference a room")
	ErrInvalidUser   = errors.New("booking must have an owner")
)

type Booking struct {
	id              int64
	userID          uuid.UUID
	roomID          int64
	stay            Stay
	total           Money
	currency        string
	paymentIntentID string
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking always starts Pending; only payment confirmation moves it to Paid.
func NewBooking(userID uuid.UUID, roomID int64, stay Stay, total Money, currency, paymentIntentID string, now time.Time) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUser
	}
	if roomID <= 0 {
		return nil, ErrInvalidRoom
	}

	return &Booking{
		userID:          userID,
		roomID:          roomID,
		stay:            stay,
		total:           total,
		currency:        currency,
		paymentIntentID: paymentIntentID,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id int64,
	userID uuid.UUID,
	roomID int64,
	stay Stay,
	total Money,
	currency, paymentIntentID string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		roomID:          roomID,
		stay:            stay,
		total:           total,
		currency:        currency,
		paymentIntentID: paymentIntentID,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// MarkPaid is one-way; it reports false when the booking was already paid.
func (b *Booking) MarkPaid(now time.Time) bool {
	if b.status == StatusPaid {
		return false
	}
	b.status = StatusPaid
	b.updatedAt = now
	return true
}

func (b *Booking) ID() int64               { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) RoomID() int64           { return b.roomID }
func (b *Booking) Stay() Stay              { return b.stay }
func (b *Booking) Total() Money            { return b.total }
func (b *Booking) Currency() string        { return b.currency }
func (b *Booking) PaymentIntentID() string { return b.paymentIntentID }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
