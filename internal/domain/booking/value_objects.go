package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingStayDates = errors.New("check-in and check-out dates are required")
	ErrNegativeMoney    = errors.New("money cannot be negative")
)

// Stay holds calendar dates only; time-of-day is discarded.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Stay{}, ErrMissingStayDates
	}
	return Stay{checkIn: dateOf(checkIn), checkOut: dateOf(checkOut)}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

// Nights is never below one, even for same-day or inverted ranges.
func (s Stay) Nights() int64 {
	days := int64(s.checkOut.Sub(s.checkIn).Hours() / 24)
	return max(1, days)
}

// IsOrdered reports whether check-in is strictly before check-out.
func (s Stay) IsOrdered() bool {
	return s.checkIn.Before(s.checkOut)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Money is an amount in hundredths of the booking currency's major unit.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

// ApplyPercentOff rounds the discounted amount to whole cents, midpoint to even.
func (m Money) ApplyPercentOff(percent int64) Money {
	if percent <= 0 {
		return m
	}
	if percent >= 100 {
		return Money{}
	}
	scaled := m.cents * (100 - percent)
	q, r := scaled/100, scaled%100
	switch {
	case r > 50:
		q++
	case r == 50 && q%2 != 0:
		q++
	}
	return Money{cents: q}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

type PromoCode struct {
	value string
}

func NewPromoCode(code *string) PromoCode {
	if code == nil {
		return PromoCode{}
	}
	return PromoCode{value: strings.TrimSpace(*code)}
}

func (p PromoCode) IsPresent() bool {
	return p.value != ""
}

func (p PromoCode) String() string {
	return p.value
}
