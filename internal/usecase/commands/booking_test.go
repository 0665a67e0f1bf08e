//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bookify/internal/domain/booking"
	"bookify/internal/domain/cart"
	reqdto "bookify/internal/handler/dto/request"
	"bookify/internal/infra"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/config"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/shared"
	"bookify/tests/common/builder"
	queriesmock "bookify/tests/mock/queries"
	sharedmock "bookify/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	m        *uowMocks
	gateway  *sharedmock.MockPaymentGateway
	queries  *queriesmock.MockBookingQueries
	clock    *clock.MockClock
	commands commands.BookingCommands
	userID   uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newUoWMocks(s.ctrl)
	s.gateway = sharedmock.NewMockPaymentGateway(s.ctrl)
	s.queries = queriesmock.NewMockBookingQueries(s.ctrl)
	s.clock = clock.NewMockClock(builder.FixedNow)
	s.userID = uuid.New()
	s.commands = commands.NewBookingCommands(
		s.m.uow,
		s.gateway,
		s.queries,
		booking.NewDefaultPriceCalculator(),
		s.clock,
		config.StripeConfig{DefaultCurrency: "usd"},
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectBookableRoom(rb *builder.RoomBuilder) {
	s.m.reads.EXPECT().RoomByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
	s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), rb.RoomTypeID).Return(rb.BuildRoomType(), nil)
}

func requestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ================================================================================
// CreateBookingWithPayment
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBookingWithPayment() {
	ctx := context.Background()
	rb := builder.NewRoomBuilder()
	req := builder.NewBookingBuilder().WithUserID(s.userID).BuildDTO()
	view := builder.NewBookingBuilder().WithID(7).WithUserID(s.userID).WithPaymentIntent("pi_1").BuildView()

	s.Run("success: creates pending booking with payment intent", func() {
		s.SetupTest()
		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r shared.PaymentIntentRequest) (*shared.PaymentIntentResult, error) {
				s.Equal(int64(20000), r.AmountMinor)
				s.Equal("usd", r.Currency)
				s.Equal(s.userID.String(), r.Metadata["userId"])
				s.Equal("1", r.Metadata["roomId"])
				s.Empty(r.IdempotencyKey)
				return &shared.PaymentIntentResult{ID: "pi_1", ClientSecret: "secret_1"}, nil
			})
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (int64, error) {
				s.Equal(booking.StatusPending, b.Status())
				s.Equal(int64(20000), b.Total().Cents())
				s.Equal("pi_1", b.PaymentIntentID())
				s.Equal(int64(2), b.Stay().Nights())
				return 7, nil
			})
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, int64(7)).Return(view, nil)

		result, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, nil)

		s.Require().NoError(err)
		s.Equal("secret_1", result.ClientSecret)
		s.False(result.IsReplayed)
		s.Equal(int64(7), result.Booking.ID)
	})

	s.Run("success: promo code takes ten percent off", func() {
		s.SetupTest()
		promoReq := builder.NewBookingBuilder().WithPromoCode("SPRING").BuildDTO()
		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(&shared.PaymentIntentResult{ID: "pi_1", ClientSecret: "secret_1"}, nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (int64, error) {
				s.Equal(int64(18000), b.Total().Cents())
				return 7, nil
			})
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, int64(7)).Return(view, nil)

		_, err := s.commands.CreateBookingWithPayment(ctx, promoReq, s.userID, nil)
		s.Require().NoError(err)
	})

	s.Run("success: processor failure still creates booking without payment", func() {
		s.SetupTest()
		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe down"))
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (int64, error) {
				s.Empty(b.PaymentIntentID())
				return 7, nil
			})
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, int64(7)).Return(view, nil)

		result, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, nil)

		s.Require().NoError(err)
		s.Empty(result.ClientSecret)
	})

	s.Run("error: unavailable room creates nothing", func() {
		s.SetupTest()
		s.m.reads.EXPECT().RoomByID(gomock.Any(), int64(1)).Return(builder.NewRoomBuilder().AsUnavailable().BuildDomain(), nil)

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, nil)
		s.ErrorIs(err, commands.ErrRoomUnavailable)
	})

	s.Run("error: missing room", func() {
		s.SetupTest()
		s.m.reads.EXPECT().RoomByID(gomock.Any(), int64(1)).
			Return(nil, infra.WrapRepoErr("room not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, nil)
		s.ErrorIs(err, commands.ErrRoomNotFound)
	})

	s.Run("error: unsupported currency code", func() {
		s.SetupTest()
		bad := req
		bad.Currency = "dollars"

		_, err := s.commands.CreateBookingWithPayment(ctx, bad, s.userID, nil)
		s.ErrorIs(err, commands.ErrInvalidBookingRequest)
	})

	s.Run("error: booking insert failure", func() {
		s.SetupTest()
		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(&shared.PaymentIntentResult{ID: "pi_1", ClientSecret: "secret_1"}, nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert", errors.New("boom"), infra.KindDBFailure))

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, nil)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingWithPayment_Idempotency() {
	ctx := context.Background()
	rb := builder.NewRoomBuilder()
	req := builder.NewBookingBuilder().BuildDTO()
	key := uuid.New()
	bookingID := int64(7)
	view := builder.NewBookingBuilder().WithID(bookingID).WithUserID(s.userID).WithPaymentIntent("pi_1").BuildView()

	s.Run("success: first request claims key and completes it", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, "POST /api/bookings", requestHash(req), builder.FixedNow.Add(24*time.Hour)).
			Return(true, nil)
		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r shared.PaymentIntentRequest) (*shared.PaymentIntentResult, error) {
				s.Equal(key.String(), r.IdempotencyKey)
				return &shared.PaymentIntentResult{ID: "pi_1", ClientSecret: "secret_1"}, nil
			})
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingID, nil)
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, s.userID, bookingID).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(view, nil)

		result, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})

	s.Run("success: completed key replays the stored booking", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).Return(&shared.IdempotencyRecord{
			Key:             key,
			UserID:          s.userID,
			Status:          shared.IdempotencyStatusCompleted,
			RequestHash:     requestHash(req),
			ResultBookingID: &bookingID,
			ExpiresAt:       builder.FixedNow.Add(time.Hour),
		}, nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(view, nil)
		s.gateway.EXPECT().ClientSecret(gomock.Any(), "pi_1").Return("secret_1", nil)

		result, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal("secret_1", result.ClientSecret)
		s.Equal(bookingID, result.Booking.ID)
	})

	s.Run("error: processing key with a different body conflicts", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyStatusProcessing,
			RequestHash: "other",
			ExpiresAt:   builder.FixedNow.Add(time.Hour),
		}, nil)

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)
		s.ErrorIs(err, commands.ErrDuplicateBooking)
	})

	s.Run("error: processing key with the same body is in progress", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyStatusProcessing,
			RequestHash: requestHash(req),
			ExpiresAt:   builder.FixedNow.Add(time.Hour),
		}, nil)

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})

	s.Run("success: expired key is reclaimed", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyStatusProcessing,
			RequestHash: "stale",
			ExpiresAt:   builder.FixedNow.Add(-time.Minute),
		}, nil)
		s.m.idempotency.EXPECT().ClaimExpired(gomock.Any(), gomock.Any(), key, s.userID, requestHash(req), gomock.Any()).
			Return(true, nil)
		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(&shared.PaymentIntentResult{ID: "pi_1", ClientSecret: "secret_1"}, nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingID, nil)
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, s.userID, bookingID).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(view, nil)

		result, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})

	s.Run("error: idempotency storage failure", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errors.New("connection reset"))

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)
		s.ErrorIs(err, commands.ErrIdempotencyCheckFailed)
	})

	s.Run("success: failed attempt releases key and the retry claims it", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(2)
		s.m.reads.EXPECT().RoomByID(gomock.Any(), rb.ID).
			Return(nil, infra.WrapRepoErr("room not found", errors.New("no rows"), infra.KindNotFound)).Times(1)
		s.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, s.userID).Return(true, nil)

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)
		s.Require().ErrorIs(err, commands.ErrRoomNotFound)

		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(&shared.PaymentIntentResult{ID: "pi_1", ClientSecret: "secret_1"}, nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingID, nil)
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, s.userID, bookingID).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(view, nil)

		result, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)

		s.Require().NoError(err)
		s.Equal(bookingID, result.Booking.ID)
	})

	s.Run("error: insert failure releases key", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.expectBookableRoom(rb)
		s.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(&shared.PaymentIntentResult{ID: "pi_1", ClientSecret: "secret_1"}, nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert", errors.New("boom"), infra.KindDBFailure))
		s.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, s.userID).Return(true, nil)

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("error: release failure keeps the original error", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.m.reads.EXPECT().RoomByID(gomock.Any(), rb.ID).Return(builder.NewRoomBuilder().AsUnavailable().BuildDomain(), nil)
		s.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, s.userID).Return(false, errors.New("connection reset"))

		_, err := s.commands.CreateBookingWithPayment(ctx, req, s.userID, &key)
		s.ErrorIs(err, commands.ErrRoomUnavailable)
	})
}

// ================================================================================
// CreateCheckoutSession
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateCheckoutSession() {
	ctx := context.Background()
	stay, err := booking.NewStay(
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)

	s.Run("success: one pending booking per item and one session", func() {
		s.SetupTest()
		first := builder.NewRoomBuilder()
		second := builder.NewRoomBuilder().WithID(2).WithNumber("102").WithBasePrice(15000)
		items := []cart.Item{{RoomID: 1, Stay: stay}, {RoomID: 2, Stay: stay}}

		s.m.reads.EXPECT().RoomByID(gomock.Any(), int64(1)).Return(first.BuildDomain(), nil)
		s.m.reads.EXPECT().RoomByID(gomock.Any(), int64(2)).Return(second.BuildDomain(), nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), int64(1)).Return(first.BuildRoomType(), nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), int64(1)).Return(second.BuildRoomType(), nil)
		gomock.InOrder(
			s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(11), nil),
			s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(12), nil),
		)
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil).Times(2)
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
				s.Equal("usd", r.Currency)
				s.Require().Len(r.LineItems, 2)
				s.Equal("Room 101 - Standard", r.LineItems[0].Name)
				s.Equal(int64(30000), r.LineItems[0].UnitAmountMinor)
				s.Equal("Room 102 - Standard", r.LineItems[1].Name)
				s.Equal(int64(45000), r.LineItems[1].UnitAmountMinor)
				s.Equal("11,12", r.Metadata["bookingIds"])
				s.Equal(s.userID.String(), r.Metadata["userId"])
				return &shared.CheckoutSessionResult{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil
			})

		url, err := s.commands.CreateCheckoutSession(ctx, s.userID, items, "")

		s.Require().NoError(err)
		s.Equal("https://checkout.example/cs_1", url)
	})

	s.Run("success: zero-decimal currency converts cents to whole units", func() {
		s.SetupTest()
		rb := builder.NewRoomBuilder()
		s.m.reads.EXPECT().RoomByID(gomock.Any(), int64(1)).Return(rb.BuildDomain(), nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), int64(1)).Return(rb.BuildRoomType(), nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(11), nil)
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
				s.Equal("jpy", r.Currency)
				s.Equal(int64(300), r.LineItems[0].UnitAmountMinor)
				return &shared.CheckoutSessionResult{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil
			})

		_, err := s.commands.CreateCheckoutSession(ctx, s.userID, []cart.Item{{RoomID: 1, Stay: stay}}, "JPY")
		s.Require().NoError(err)
	})

	s.Run("error: empty cart", func() {
		s.SetupTest()
		_, err := s.commands.CreateCheckoutSession(ctx, s.userID, nil, "usd")
		s.ErrorIs(err, commands.ErrEmptyCart)
	})

	s.Run("error: processor failure", func() {
		s.SetupTest()
		rb := builder.NewRoomBuilder()
		s.m.reads.EXPECT().RoomByID(gomock.Any(), int64(1)).Return(rb.BuildDomain(), nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), int64(1)).Return(rb.BuildRoomType(), nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(11), nil)
		s.m.expectEnqueue(shared.EventBookingCreated).Return(nil)
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("stripe down"))

		_, err := s.commands.CreateCheckoutSession(ctx, s.userID, []cart.Item{{RoomID: 1, Stay: stay}}, "usd")
		s.ErrorIs(err, commands.ErrPaymentProcessor)
	})

	s.Run("error: room removed since it was added", func() {
		s.SetupTest()
		s.m.reads.EXPECT().RoomByID(gomock.Any(), int64(9)).
			Return(nil, infra.WrapRepoErr("room not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.CreateCheckoutSession(ctx, s.userID, []cart.Item{{RoomID: 9, Stay: stay}}, "usd")
		s.ErrorIs(err, commands.ErrRoomNotFound)
	})
}

// ================================================================================
// MarkPaid
// ================================================================================

func (s *BookingCommandsTestSuite) TestMarkPaid() {
	ctx := context.Background()

	s.Run("success: pending booking becomes paid", func() {
		s.SetupTest()
		entity, err := builder.NewBookingBuilder().WithUserID(s.userID).WithPaymentIntent("pi_1").BuildDomain()
		s.Require().NoError(err)
		s.m.reads.EXPECT().UserBookingByPaymentIntent(gomock.Any(), "pi_1", s.userID).Return(entity, nil)
		s.m.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				s.Equal(booking.StatusPaid, b.Status())
				return nil
			})
		s.m.expectEnqueue(shared.EventBookingPaid).Return(nil)

		found, err := s.commands.MarkPaid(ctx, "pi_1", s.userID)

		s.Require().NoError(err)
		s.True(found)
	})

	s.Run("success: already paid booking is left alone", func() {
		s.SetupTest()
		entity, err := builder.NewBookingBuilder().WithUserID(s.userID).WithPaymentIntent("pi_1").AsPaid().BuildDomain()
		s.Require().NoError(err)
		s.m.reads.EXPECT().UserBookingByPaymentIntent(gomock.Any(), "pi_1", s.userID).Return(entity, nil)

		found, err := s.commands.MarkPaid(ctx, "pi_1", s.userID)

		s.Require().NoError(err)
		s.True(found)
	})

	s.Run("success: unknown intent reports false", func() {
		s.SetupTest()
		s.m.reads.EXPECT().UserBookingByPaymentIntent(gomock.Any(), "pi_other", s.userID).
			Return(nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound))

		found, err := s.commands.MarkPaid(ctx, "pi_other", s.userID)

		s.Require().NoError(err)
		s.False(found)
	})

	s.Run("error: lookup failure", func() {
		s.SetupTest()
		s.m.reads.EXPECT().UserBookingByPaymentIntent(gomock.Any(), "pi_1", s.userID).
			Return(nil, infra.WrapRepoErr("query", errors.New("boom"), infra.KindDBFailure))

		_, err := s.commands.MarkPaid(ctx, "pi_1", s.userID)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
