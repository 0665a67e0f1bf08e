package queries

import (
	"context"
	"time"

	"bookify/internal/infra"
	"bookify/internal/pkg/errs"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrInvalidDateRange = errs.New("check-in must be before check-out")
	ErrRoomQueryFailed  = errs.New("room query failed")
)

type RoomQueries interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	SearchAvailable(ctx context.Context, checkIn, checkOut time.Time, roomTypeID *int64) ([]*RoomView, error)
	GetRoom(ctx context.Context, id int64) (*RoomView, error)
}

type RoomReadStore interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	FindByID(ctx context.Context, id int64) (*RoomView, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*RoomView, error)
	SearchAvailable(ctx context.Context, checkIn, checkOut time.Time, roomTypeID *int64) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	types, err := q.readStore.ListRoomTypes(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return types, nil
}

// SearchAvailable excludes rooms with a Pending or Paid booking overlapping [checkIn, checkOut).
func (q *roomQueriesImpl) SearchAvailable(ctx context.Context, checkIn, checkOut time.Time, roomTypeID *int64) ([]*RoomView, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	rooms, err := q.readStore.SearchAvailable(ctx, checkIn, checkOut, roomTypeID)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return rooms, nil
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	room, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return room, nil
}
