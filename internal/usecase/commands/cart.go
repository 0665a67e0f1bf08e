package commands

import (
	"context"
	"log/slog"
	"time"

	"bookify/internal/domain/cart"
	reqdto "bookify/internal/handler/dto/request"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartRequest = errs.New("invalid cart request")
	ErrCartStoreFailed    = errs.New("cart store failed")
)

type CartCommands interface {
	AddToCart(ctx context.Context, userID uuid.UUID, req reqdto.AddCartItemRequest) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
	RememberSearch(ctx context.Context, userID uuid.UUID, checkIn, checkOut time.Time) error
	// Checkout turns the cart into Pending bookings and returns the hosted checkout URL.
	Checkout(ctx context.Context, userID uuid.UUID, currency string) (string, error)
}

type cartCommandsImpl struct {
	uow      shared.UnitOfWork
	store    shared.CartStore
	bookings BookingCommands
	clock    clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, store shared.CartStore, bookings BookingCommands, clock clock.Clock) CartCommands {
	return &cartCommandsImpl{
		uow:      uow,
		store:    store,
		bookings: bookings,
		clock:    clock,
	}
}

func (c *cartCommandsImpl) AddToCart(ctx context.Context, userID uuid.UUID, req reqdto.AddCartItemRequest) error {
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return errs.Mark(err, ErrInvalidCartRequest)
	}

	if _, err := c.uow.CommandReads().RoomByID(ctx, req.RoomID); err != nil {
		return mapLookupErr(err, ErrRoomNotFound)
	}

	last, err := c.store.LastSearch(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load last search, using default dates", "user_id", userID, "error", err.Error())
		last = nil
	}

	stay := cart.ResolveStay(checkIn, checkOut, last, clock.Today(c.clock))
	item, err := cart.NewItem(req.RoomID, stay)
	if err != nil {
		return errs.Mark(err, ErrInvalidCartRequest)
	}

	current, err := c.store.Load(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrCartStoreFailed)
	}
	current.Add(item)

	if err := c.store.Save(ctx, userID, current); err != nil {
		return errs.Mark(err, ErrCartStoreFailed)
	}
	return nil
}

func (c *cartCommandsImpl) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := c.store.Clear(ctx, userID); err != nil {
		return errs.Mark(err, ErrCartStoreFailed)
	}
	return nil
}

func (c *cartCommandsImpl) RememberSearch(ctx context.Context, userID uuid.UUID, checkIn, checkOut time.Time) error {
	if err := c.store.RememberSearch(ctx, userID, cart.LastSearch{CheckIn: checkIn, CheckOut: checkOut}); err != nil {
		return errs.Mark(err, ErrCartStoreFailed)
	}
	return nil
}

func (c *cartCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID, currency string) (string, error) {
	current, err := c.store.Load(ctx, userID)
	if err != nil {
		return "", errs.Mark(err, ErrCartStoreFailed)
	}
	if current.IsEmpty() {
		return "", ErrEmptyCart
	}

	return c.bookings.CreateCheckoutSession(ctx, userID, current.Items, currency)
}
