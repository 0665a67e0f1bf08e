//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookify/internal/domain/booking"
	"bookify/internal/domain/cart"
	"bookify/internal/infra"
	"bookify/internal/usecase/queries"
	"bookify/tests/common/builder"
	queriesmock "bookify/tests/mock/queries"
	sharedmock "bookify/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func date(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestRoomQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("search rejects empty or inverted range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewRoomQueries(queriesmock.NewMockRoomReadStore(ctrl))

		_, err := q.SearchAvailable(ctx, date(5), date(5), nil)
		assert.ErrorIs(t, err, queries.ErrInvalidDateRange)

		_, err = q.SearchAvailable(ctx, date(6), date(5), nil)
		assert.ErrorIs(t, err, queries.ErrInvalidDateRange)
	})

	t.Run("search passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomReadStore(ctrl)
		q := queries.NewRoomQueries(store)
		typeID := int64(2)
		want := []*queries.RoomView{builder.NewRoomBuilder().BuildView()}
		store.EXPECT().SearchAvailable(gomock.Any(), date(5), date(7), &typeID).Return(want, nil)

		got, err := q.SearchAvailable(ctx, date(5), date(7), &typeID)

		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SearchAvailable() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, notFound())

		_, err := queries.NewRoomQueries(store).GetRoom(ctx, 9)
		assert.ErrorIs(t, err, queries.ErrRoomNotFound)
	})

	t.Run("list room types failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomReadStore(ctrl)
		store.EXPECT().ListRoomTypes(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := queries.NewRoomQueries(store).ListRoomTypes(ctx)
		assert.ErrorIs(t, err, queries.ErrRoomQueryFailed)
	})
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("other user's booking is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByIDForUser(gomock.Any(), int64(3), userID).Return(nil, notFound())

		_, err := queries.NewBookingQueries(store).GetByID(ctx, userID, 3)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, errors.New("boom"))

		_, err := queries.NewBookingQueries(store).ListByUser(ctx, userID)
		assert.ErrorIs(t, err, queries.ErrBookingQueryFailed)
	})
}

func TestUserQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, view.ID)
		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("connection reset"))

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)
		assert.ErrorIs(t, err, queries.ErrUserQueryFailed)
		assert.NotErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("active user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})
}

func TestCartQueries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	stay := func(in, out int) booking.Stay {
		s, err := booking.NewStay(date(in), date(out))
		require.NoError(t, err)
		return s
	}

	t.Run("prices items and skips removed rooms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockCartStore(ctrl)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		store.EXPECT().Load(gomock.Any(), userID).Return(&cart.Cart{Items: []cart.Item{
			{RoomID: 1, Stay: stay(10, 12)},
			{RoomID: 9, Stay: stay(10, 11)},
			{RoomID: 1, Stay: stay(20, 23)},
		}}, nil)
		rooms.EXPECT().FindByIDs(gomock.Any(), []int64{1, 9, 1}).
			Return(map[int64]*queries.RoomView{1: builder.NewRoomBuilder().BuildView()}, nil)

		view, err := queries.NewCartQueries(store, rooms).ViewCart(ctx, userID)

		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, int64(20000), view.Items[0].EstimatedTotalCents)
		assert.Equal(t, int64(3), view.Items[1].Nights)
		assert.Equal(t, int64(50000), view.TotalCents)
	})

	t.Run("empty cart skips room lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockCartStore(ctrl)
		store.EXPECT().Load(gomock.Any(), userID).Return(&cart.Cart{}, nil)

		view, err := queries.NewCartQueries(store, queriesmock.NewMockRoomReadStore(ctrl)).ViewCart(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.TotalCents)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockCartStore(ctrl)
		store.EXPECT().Load(gomock.Any(), userID).Return(nil, errors.New("redis down"))

		_, err := queries.NewCartQueries(store, queriesmock.NewMockRoomReadStore(ctrl)).ViewCart(ctx, userID)
		assert.ErrorIs(t, err, queries.ErrCartQueryFailed)
	})
}
