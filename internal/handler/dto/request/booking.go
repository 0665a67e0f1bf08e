package request

import (
	"strings"

	"bookify/internal/domain/booking"
)

type CreateBookingRequest struct {
	RoomID    int64   `json:"roomId" binding:"required,gt=0"`
	CheckIn   string  `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut  string  `json:"checkOut" binding:"required,datetime=2006-01-02"`
	Currency  string  `json:"currency,omitempty" binding:"omitempty,currency"`
	PromoCode *string `json:"promoCode,omitempty"`
}

func (r CreateBookingRequest) Stay() (booking.Stay, error) {
	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return booking.Stay{}, err
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return booking.Stay{}, err
	}
	return booking.NewStay(checkIn, checkOut)
}

func (r CreateBookingRequest) Promo() booking.PromoCode {
	return booking.NewPromoCode(r.PromoCode)
}

// CurrencyOr returns the requested currency in lower case, or fallback when none was sent.
func (r CreateBookingRequest) CurrencyOr(fallback string) string {
	if c := strings.TrimSpace(r.Currency); c != "" {
		return strings.ToLower(c)
	}
	return fallback
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}
