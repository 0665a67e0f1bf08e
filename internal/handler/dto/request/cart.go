package request

import (
	"strings"
	"time"
)

type AddCartItemRequest struct {
	RoomID   int64   `json:"roomId" binding:"required,gt=0"`
	CheckIn  *string `json:"checkIn,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CheckOut *string `json:"checkOut,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r AddCartItemRequest) Dates() (checkIn, checkOut *time.Time, err error) {
	if checkIn, err = parseOptionalDate(r.CheckIn); err != nil {
		return nil, nil, err
	}
	if checkOut, err = parseOptionalDate(r.CheckOut); err != nil {
		return nil, nil, err
	}
	return checkIn, checkOut, nil
}

type CheckoutRequest struct {
	Currency string `json:"currency,omitempty" binding:"omitempty,currency"`
}

func (r CheckoutRequest) CurrencyOr(fallback string) string {
	if c := strings.TrimSpace(r.Currency); c != "" {
		return strings.ToLower(c)
	}
	return fallback
}
