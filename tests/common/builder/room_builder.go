//go:build unit || e2e

package builder

import (
	"bookify/internal/domain/room"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID                     int64
	Number                 string
	Floor                  int32
	IsAvailable            bool
	RoomTypeID             int64
	RoomTypeName           string
	RoomTypeDescription    string
	Capacity               int32
	BasePricePerNightCents int64
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                     1,
		Number:                 "101",
		Floor:                  1,
		IsAvailable:            true,
		RoomTypeID:             1,
		RoomTypeName:           "Standard",
		RoomTypeDescription:    "Queen bed, city view",
		Capacity:               2,
		BasePricePerNightCents: 10000,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithID(id int64) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithBasePrice(cents int64) *RoomBuilder {
	r.BasePricePerNightCents = cents
	return r
}

func (r *RoomBuilder) AsUnavailable() *RoomBuilder {
	r.IsAvailable = false
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.Reconstruct(r.ID, r.Number, r.RoomTypeID, r.Floor, r.IsAvailable)
}

func (r *RoomBuilder) BuildRoomType() *room.RoomType {
	return room.ReconstructRoomType(r.RoomTypeID, r.RoomTypeName, r.RoomTypeDescription, r.Capacity, r.BasePricePerNightCents)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                     r.ID,
		Number:                 r.Number,
		Floor:                  r.Floor,
		IsAvailable:            r.IsAvailable,
		RoomTypeID:             r.RoomTypeID,
		RoomTypeName:           r.RoomTypeName,
		RoomTypeDescription:    r.RoomTypeDescription,
		Capacity:               r.Capacity,
		BasePricePerNightCents: r.BasePricePerNightCents,
	}
}

func (r *RoomBuilder) BuildInfra() sqlc.Rooms {
	return sqlc.Rooms{
		ID:          r.ID,
		Number:      r.Number,
		RoomTypeID:  r.RoomTypeID,
		Floor:       r.Floor,
		IsAvailable: r.IsAvailable,
		CreatedAt:   pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

func (r *RoomBuilder) BuildRow() sqlc.ListRoomsWithTypeByIDsRow {
	return sqlc.ListRoomsWithTypeByIDsRow{
		ID:                  r.ID,
		Number:              r.Number,
		Floor:               r.Floor,
		IsAvailable:         r.IsAvailable,
		RoomTypeID:          r.RoomTypeID,
		RoomTypeName:        r.RoomTypeName,
		RoomTypeDescription: r.RoomTypeDescription,
		Capacity:            r.Capacity,
		BasePricePerNight:   r.BasePricePerNightCents,
	}
}
