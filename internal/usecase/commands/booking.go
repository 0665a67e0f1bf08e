package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"bookify/internal/domain/booking"
	"bookify/internal/domain/cart"
	"bookify/internal/domain/payment"
	"bookify/internal/domain/room"
	reqdto "bookify/internal/handler/dto/request"
	"bookify/internal/infra"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/queries"
	"bookify/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomTypeNotFound        = errs.New("room type not found")
	ErrRoomUnavailable         = errs.New("room is not available")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidBookingRequest   = errs.New("invalid booking request")
	ErrPaymentProcessor        = errs.New("payment processor error")
	ErrEmptyCart               = errs.New("cart is empty")
	ErrDuplicateBooking        = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	bookingEndpoint = "POST /api/bookings"
	idempotencyTTL  = 24 * time.Hour
)

type CreateBookingResult struct {
	Booking      *queries.BookingView
	ClientSecret string
	IsReplayed   bool
}

type BookingCommands interface {
	CreateBookingWithPayment(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	// CreateCheckoutSession returns the hosted checkout URL.
	CreateCheckoutSession(ctx context.Context, userID uuid.UUID, items []cart.Item, currency string) (string, error)
	// MarkPaid reports false when the user has no booking for the payment intent.
	MarkPaid(ctx context.Context, paymentIntentID string, userID uuid.UUID) (bool, error)
}

type bookingCommandsImpl struct {
	uow             shared.UnitOfWork
	gateway         shared.PaymentGateway
	bookingQueries  queries.BookingQueries
	calculator      booking.PriceCalculator
	clock           clock.Clock
	defaultCurrency string
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	bookingQueries queries.BookingQueries,
	calculator booking.PriceCalculator,
	clock clock.Clock,
	cfg config.StripeConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:             uow,
		gateway:         gateway,
		bookingQueries:  bookingQueries,
		calculator:      calculator,
		clock:           clock,
		defaultCurrency: cfg.DefaultCurrency,
	}
}

type bookingCreatedEvent struct {
	BookingID       int64     `json:"booking_id"`
	UserID          uuid.UUID `json:"user_id"`
	RoomID          int64     `json:"room_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	TotalCostCents  int64     `json:"total_cost_cents"`
	Currency        string    `json:"currency"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
}

type bookingPaidEvent struct {
	BookingIDs      []int64 `json:"booking_ids"`
	PaymentIntentID string  `json:"payment_intent_id,omitempty"`
	SessionID       string  `json:"session_id,omitempty"`
}

func (b *bookingCommandsImpl) CreateBookingWithPayment(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	stay, err := req.Stay()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	currency, err := payment.NewCurrency(req.CurrencyOr(b.defaultCurrency))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	if idempotencyKey == nil {
		return b.createBooking(ctx, req, stay, currency, userID, nil)
	}

	replayed, err := b.handleIdempotency(ctx, *idempotencyKey, userID, calculateRequestHash(req))
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	result, err := b.createBooking(ctx, req, stay, currency, userID, idempotencyKey)
	if err != nil {
		b.releaseIdempotencyKey(ctx, *idempotencyKey, userID)
		return nil, err
	}
	return result, nil
}

// createBooking runs once the request owns its idempotency key, if any. The key
// is completed in the same transaction as the booking insert.
func (b *bookingCommandsImpl) createBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	stay booking.Stay,
	currency payment.Currency,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	rm, roomType, err := b.loadBookableRoom(ctx, b.uow.CommandReads(), req.RoomID)
	if err != nil {
		return nil, err
	}

	base, err := booking.NewMoney(roomType.BasePricePerNightCents())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	total := b.calculator.Calculate(base, stay, req.Promo())

	intent := b.tryCreatePaymentIntent(ctx, rm.ID(), userID, total, currency, idempotencyKey)

	var bookingID int64
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := booking.NewBooking(userID, rm.ID(), stay, total, currency.String(), intent.ID, b.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidBookingRequest)
		}

		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := shared.EnqueueEvent(ctx, tx, shared.EventBookingCreated, newBookingCreatedEvent(bookingID, entity), b.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, userID, bookingID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", bookingID,
		"user_id", userID,
		"payment_intent_id", intent.ID,
		"total_cents", total.Cents())

	view, err := b.bookingQueries.GetByID(ctx, userID, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		Booking:      view,
		ClientSecret: intent.ClientSecret,
		IsReplayed:   false,
	}, nil
}

// releaseIdempotencyKey lets a failed attempt be retried with the same key.
// A key already completed by a committed booking is not touched.
func (b *bookingCommandsImpl) releaseIdempotencyKey(ctx context.Context, key, userID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Idempotency().Release(ctx, tx.DB(), key, userID)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "user_id", userID, "error", err.Error())
	}
}

// handleIdempotency returns a replay result for a completed key, nil when this
// request owns the key, or a conflict error otherwise.
func (b *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
) (*CreateBookingResult, error) {
	now := b.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	var (
		owned    bool
		existing *shared.IdempotencyRecord
	)
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, bookingEndpoint, requestHash, expiresAt)
		if err != nil || inserted {
			owned = inserted
			return err
		}

		existing, err = tx.Reads().IdempotencyByKey(ctx, key, userID)
		if err != nil {
			return err
		}
		if existing.ExpiresAt.Before(now) {
			owned, err = tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		}
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if owned {
		return nil, nil
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), ErrIdempotencyCheckFailed)
		}
		view, err := b.bookingQueries.GetByID(ctx, userID, *existing.ResultBookingID)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		return &CreateBookingResult{
			Booking:      view,
			ClientSecret: b.tryFetchClientSecret(ctx, view.PaymentIntentID),
			IsReplayed:   true,
		}, nil

	case shared.IdempotencyStatusProcessing:
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), ErrIdempotencyCheckFailed)
	}
}

func (b *bookingCommandsImpl) CreateCheckoutSession(ctx context.Context, userID uuid.UUID, items []cart.Item, currencyCode string) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	if currencyCode == "" {
		currencyCode = b.defaultCurrency
	}
	currency, err := payment.NewCurrency(currencyCode)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidBookingRequest)
	}

	reads := b.uow.CommandReads()
	bookingIDs := make([]int64, 0, len(items))
	lineItems := make([]shared.CheckoutLineItem, 0, len(items))

	// Each item commits on its own; a later failure leaves earlier bookings Pending.
	for _, item := range items {
		rm, err := reads.RoomByID(ctx, item.RoomID)
		if err != nil {
			return "", mapLookupErr(err, ErrRoomNotFound)
		}
		roomType, err := reads.RoomTypeByID(ctx, rm.RoomTypeID())
		if err != nil {
			return "", mapLookupErr(err, ErrRoomTypeNotFound)
		}

		base, err := booking.NewMoney(roomType.BasePricePerNightCents())
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		total := b.calculator.Calculate(base, item.Stay, booking.PromoCode{})

		bookingID, err := b.persistPendingBooking(ctx, userID, rm.ID(), item.Stay, total, currency)
		if err != nil {
			return "", err
		}
		bookingIDs = append(bookingIDs, bookingID)

		lineItems = append(lineItems, shared.CheckoutLineItem{
			Name:            room.DisplayName(rm, roomType),
			UnitAmountMinor: currency.ToMinorUnits(total.Cents()),
			Quantity:        1,
		})
	}

	session, err := b.gateway.CreateCheckoutSession(ctx, shared.CheckoutSessionRequest{
		Currency:  currency.String(),
		LineItems: lineItems,
		Metadata: map[string]string{
			payment.MetadataUserID:     userID.String(),
			payment.MetadataBookingIDs: payment.JoinBookingIDs(bookingIDs),
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create checkout session",
			"user_id", userID,
			"booking_ids", bookingIDs,
			"error", err.Error())
		return "", errs.Mark(err, ErrPaymentProcessor)
	}

	slog.InfoContext(ctx, "checkout session created",
		"session_id", session.ID,
		"user_id", userID,
		"booking_ids", bookingIDs)

	return session.URL, nil
}

func (b *bookingCommandsImpl) persistPendingBooking(
	ctx context.Context,
	userID uuid.UUID,
	roomID int64,
	stay booking.Stay,
	total booking.Money,
	currency payment.Currency,
) (int64, error) {
	var bookingID int64
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := booking.NewBooking(userID, roomID, stay, total, currency.String(), "", b.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidBookingRequest)
		}

		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := shared.EnqueueEvent(ctx, tx, shared.EventBookingCreated, newBookingCreatedEvent(bookingID, entity), b.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	return bookingID, err
}

func (b *bookingCommandsImpl) MarkPaid(ctx context.Context, paymentIntentID string, userID uuid.UUID) (bool, error) {
	if paymentIntentID == "" {
		return false, nil
	}

	found := false
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().UserBookingByPaymentIntent(ctx, paymentIntentID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		found = true

		if !entity.MarkPaid(b.clock.Now()) {
			return nil
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		event := bookingPaidEvent{BookingIDs: []int64{entity.ID()}, PaymentIntentID: paymentIntentID}
		if err := shared.EnqueueEvent(ctx, tx, shared.EventBookingPaid, event, b.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if found {
		slog.InfoContext(ctx, "booking marked paid", "payment_intent_id", paymentIntentID, "user_id", userID)
	}
	return found, nil
}

func (b *bookingCommandsImpl) loadBookableRoom(ctx context.Context, reads shared.CommandReads, roomID int64) (*room.Room, *room.RoomType, error) {
	rm, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		return nil, nil, mapLookupErr(err, ErrRoomNotFound)
	}
	if err := rm.EnsureBookable(); err != nil {
		return nil, nil, errs.Mark(err, ErrRoomUnavailable)
	}

	roomType, err := reads.RoomTypeByID(ctx, rm.RoomTypeID())
	if err != nil {
		return nil, nil, mapLookupErr(err, ErrRoomTypeNotFound)
	}
	return rm, roomType, nil
}

// tryCreatePaymentIntent never fails the booking; on processor errors the
// returned intent is empty.
func (b *bookingCommandsImpl) tryCreatePaymentIntent(
	ctx context.Context,
	roomID int64,
	userID uuid.UUID,
	total booking.Money,
	currency payment.Currency,
	idempotencyKey *uuid.UUID,
) shared.PaymentIntentResult {
	req := shared.PaymentIntentRequest{
		AmountMinor: currency.ToMinorUnits(total.Cents()),
		Currency:    currency.String(),
		Metadata: map[string]string{
			payment.MetadataRoomID: strconv.FormatInt(roomID, 10),
			payment.MetadataUserID: userID.String(),
		},
	}
	if idempotencyKey != nil {
		req.IdempotencyKey = idempotencyKey.String()
	}

	intent, err := b.gateway.CreatePaymentIntent(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "payment intent creation failed, booking continues without payment",
			"room_id", roomID,
			"user_id", userID,
			"error", err.Error())
		return shared.PaymentIntentResult{}
	}
	return *intent
}

func (b *bookingCommandsImpl) tryFetchClientSecret(ctx context.Context, paymentIntentID *string) string {
	if paymentIntentID == nil || *paymentIntentID == "" {
		return ""
	}
	secret, err := b.gateway.ClientSecret(ctx, *paymentIntentID)
	if err != nil {
		slog.WarnContext(ctx, "failed to re-fetch client secret", "payment_intent_id", *paymentIntentID, "error", err.Error())
		return ""
	}
	return secret
}

func newBookingCreatedEvent(id int64, entity *booking.Booking) bookingCreatedEvent {
	return bookingCreatedEvent{
		BookingID:       id,
		UserID:          entity.UserID(),
		RoomID:          entity.RoomID(),
		CheckIn:         entity.Stay().CheckIn().Format(reqdto.DateLayout),
		CheckOut:        entity.Stay().CheckOut().Format(reqdto.DateLayout),
		TotalCostCents:  entity.Total().Cents(),
		Currency:        entity.Currency(),
		PaymentIntentID: entity.PaymentIntentID(),
	}
}

func mapLookupErr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
