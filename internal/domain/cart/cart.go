package cart

import (
	"errors"
	"time"

	"bookify/internal/domain/booking"
)

var ErrInvalidRoom = errors.New("cart item must reference a room")

type Item struct {
	RoomID int64
	Stay   booking.Stay
}

func NewItem(roomID int64, stay booking.Stay) (Item, error) {
	if roomID <= 0 {
		return Item{}, ErrInvalidRoom
	}
	return Item{RoomID: roomID, Stay: stay}, nil
}

type Cart struct {
	Items []Item
}

func (c *Cart) Add(item Item) {
	c.Items = append(c.Items, item)
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// LastSearch is the most recent date range a user searched rooms with.
type LastSearch struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ResolveStay picks the requested dates when they form a valid range, then the
// last searched range, then today through tomorrow.
func ResolveStay(checkIn, checkOut *time.Time, last *LastSearch, today time.Time) booking.Stay {
	if checkIn != nil && checkOut != nil {
		if stay, err := booking.NewStay(*checkIn, *checkOut); err == nil && stay.IsOrdered() {
			return stay
		}
	}
	if last != nil {
		if stay, err := booking.NewStay(last.CheckIn, last.CheckOut); err == nil && stay.IsOrdered() {
			return stay
		}
	}
	stay, _ := booking.NewStay(today, today.AddDate(0, 0, 1))
	return stay
}
