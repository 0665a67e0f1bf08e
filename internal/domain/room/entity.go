package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 16 characters)")
	ErrInvalidRoomType   = errors.New("room must belong to a room type")
	ErrRoomNotBookable   = errors.New("room is not available for booking")
)

const MaxRoomNumberLength = 16

type Room struct {
	id          int64
	number      string
	roomTypeID  int64
	floor       int32
	isAvailable bool
}

func NewRoom(number string, roomTypeID int64, floor int32, isAvailable bool) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return nil, ErrRoomNumberTooLong
	}
	if roomTypeID <= 0 {
		return nil, ErrInvalidRoomType
	}

	return &Room{
		number:      number,
		roomTypeID:  roomTypeID,
		floor:       floor,
		isAvailable: isAvailable,
	}, nil
}

func Reconstruct(id int64, number string, roomTypeID int64, floor int32, isAvailable bool) *Room {
	return &Room{
		id:          id,
		number:      number,
		roomTypeID:  roomTypeID,
		floor:       floor,
		isAvailable: isAvailable,
	}
}

// EnsureBookable is the availability gate applied before a booking is priced.
func (r *Room) EnsureBookable() error {
	if !r.isAvailable {
		return ErrRoomNotBookable
	}
	return nil
}

func (r *Room) ID() int64         { return r.id }
func (r *Room) Number() string    { return r.number }
func (r *Room) RoomTypeID() int64 { return r.roomTypeID }
func (r *Room) Floor() int32      { return r.floor }
func (r *Room) IsAvailable() bool { return r.isAvailable }
