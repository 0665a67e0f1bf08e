package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomTypeName = errors.New("room type name cannot be empty")
	ErrNegativeBasePrice = errors.New("base price per night cannot be negative")
	ErrInvalidCapacity   = errors.New("capacity must be at least 1")
)

// RoomType is reference data; only the seeder creates it.
type RoomType struct {
	id                   int64
	name                 string
	description          string
	capacity             int32
	basePricePerNightCts int64
}

func NewRoomType(name, description string, capacity int32, basePricePerNightCents int64) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomTypeName
	}
	if basePricePerNightCents < 0 {
		return nil, ErrNegativeBasePrice
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &RoomType{
		name:                 name,
		description:          strings.TrimSpace(description),
		capacity:             capacity,
		basePricePerNightCts: basePricePerNightCents,
	}, nil
}

func ReconstructRoomType(id int64, name, description string, capacity int32, basePricePerNightCents int64) *RoomType {
	return &RoomType{
		id:                   id,
		name:                 name,
		description:          description,
		capacity:             capacity,
		basePricePerNightCts: basePricePerNightCents,
	}
}

func (t *RoomType) ID() int64                     { return t.id }
func (t *RoomType) Name() string                  { return t.name }
func (t *RoomType) Description() string           { return t.description }
func (t *RoomType) Capacity() int32               { return t.capacity }
func (t *RoomType) BasePricePerNightCents() int64 { return t.basePricePerNightCts }

// DisplayName is the line-item label shown on the hosted checkout page.
func DisplayName(r *Room, t *RoomType) string {
	return "Room " + r.Number() + " - " + t.Name()
}
