package readstore

import (
	"context"
	"time"

	"bookify/internal/domain/room"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/pgconv"
	"bookify/internal/usecase/queries"
)

type RoomReadQueries interface {
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.RoomTypes, error)
	GetRoomType(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RoomTypes, error)
	GetRoom(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Rooms, error)
	GetRoomWithType(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetRoomWithTypeRow, error)
	ListRoomsWithTypeByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.ListRoomsWithTypeByIDsRow, error)
	SearchAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchAvailableRoomsParams) ([]sqlc.SearchAvailableRoomsRow, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) ListRoomTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	result := make([]*queries.RoomTypeView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RoomTypeView{
			ID:                     row.ID,
			Name:                   row.Name,
			Description:            row.Description,
			Capacity:               row.Capacity,
			BasePricePerNightCents: row.BasePricePerNight,
		}
	}
	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomWithType(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return toRoomView(sqlc.ListRoomsWithTypeByIDsRow(row)), nil
}

func (r *RoomReadStore) FindByIDs(ctx context.Context, ids []int64) (map[int64]*queries.RoomView, error) {
	result := make(map[int64]*queries.RoomView, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.queries.ListRoomsWithTypeByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	for _, row := range rows {
		result[row.ID] = toRoomView(row)
	}
	return result, nil
}

func (r *RoomReadStore) SearchAvailable(ctx context.Context, checkIn, checkOut time.Time, roomTypeID *int64) ([]*queries.RoomView, error) {
	params := sqlc.SearchAvailableRoomsParams{
		RoomTypeID: pgconv.Int8PtrToPgtype(roomTypeID),
		CheckIn:    pgconv.DateToPgtype(checkIn),
		CheckOut:   pgconv.DateToPgtype(checkOut),
	}

	rows, err := r.queries.SearchAvailableRooms(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = toRoomView(sqlc.ListRoomsWithTypeByIDsRow(row))
	}
	return result, nil
}

// FindRoom returns the write-side entity used by booking commands.
func (r *RoomReadStore) FindRoom(ctx context.Context, id int64) (*room.Room, error) {
	row, err := r.queries.GetRoom(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return room.Reconstruct(row.ID, row.Number, row.RoomTypeID, row.Floor, row.IsAvailable), nil
}

func (r *RoomReadStore) FindRoomType(ctx context.Context, id int64) (*room.RoomType, error) {
	row, err := r.queries.GetRoomType(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return room.ReconstructRoomType(row.ID, row.Name, row.Description, row.Capacity, row.BasePricePerNight), nil
}

func toRoomView(row sqlc.ListRoomsWithTypeByIDsRow) *queries.RoomView {
	return &queries.RoomView{
		ID:                     row.ID,
		Number:                 row.Number,
		Floor:                  row.Floor,
		IsAvailable:            row.IsAvailable,
		RoomTypeID:             row.RoomTypeID,
		RoomTypeName:           row.RoomTypeName,
		RoomTypeDescription:    row.RoomTypeDescription,
		Capacity:               row.Capacity,
		BasePricePerNightCents: row.BasePricePerNight,
	}
}

