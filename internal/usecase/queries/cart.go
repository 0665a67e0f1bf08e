package queries

import (
	"context"

	"github.com/google/uuid"

	"bookify/internal/domain/booking"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/shared"
)

var ErrCartQueryFailed = errs.New("cart query failed")

type CartQueries interface {
	ViewCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store      shared.CartStore
	rooms      RoomReadStore
	calculator booking.PriceCalculator
}

func NewCartQueries(store shared.CartStore, rooms RoomReadStore) CartQueries {
	return &cartQueriesImpl{
		store:      store,
		rooms:      rooms,
		calculator: booking.NewDefaultPriceCalculator(),
	}
}

// ViewCart prices each item without promo; rooms deleted since they were added are skipped.
func (q *cartQueriesImpl) ViewCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	c, err := q.store.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartQueryFailed)
	}

	view := &CartView{Items: []CartItemView{}}
	if c.IsEmpty() {
		return view, nil
	}

	ids := make([]int64, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.RoomID)
	}
	rooms, err := q.rooms.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrCartQueryFailed)
	}

	for _, item := range c.Items {
		room, ok := rooms[item.RoomID]
		if !ok {
			continue
		}
		base, err := booking.NewMoney(room.BasePricePerNightCents)
		if err != nil {
			continue
		}
		total := q.calculator.Calculate(base, item.Stay, booking.PromoCode{})

		view.Items = append(view.Items, CartItemView{
			RoomID:              room.ID,
			RoomNumber:          room.Number,
			RoomTypeName:        room.RoomTypeName,
			CheckIn:             item.Stay.CheckIn(),
			CheckOut:            item.Stay.CheckOut(),
			Nights:              item.Stay.Nights(),
			EstimatedTotalCents: total.Cents(),
		})
		view.TotalCents += total.Cents()
	}

	return view, nil
}
