//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bookify/internal/handler/api"
	reqdto "bookify/internal/handler/dto/request"
	resdto "bookify/internal/handler/dto/response"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/queries"
	"bookify/tests/common/builder"
	"bookify/tests/common/httptest"
	"bookify/tests/common/testutil"
	commandsmock "bookify/tests/mock/commands"
	queriesmock "bookify/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/bookings", asUser(s.userID, h.Create))
	s.router.GET("/bookings", asUser(s.userID, h.List))
	s.router.GET("/bookings/:id", asUser(s.userID, h.Get))
	s.router.POST("/bookings/confirm", asUser(s.userID, h.Confirm))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder().WithUserID(s.userID).WithPromoCode("SPRING")
	reqBody := b.BuildDTO()
	view := b.BuildView()

	s.Run("success: 201 with booking and client secret", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().CreateBookingWithPayment(gomock.Any(), reqBody, s.userID, gomock.Nil()).
			Return(&commands.CreateBookingResult{Booking: view, ClientSecret: "pi_secret"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("pi_secret", response.ClientSecret)
		s.Equal("200.00", response.Booking.TotalCost)
		s.Equal("2025-03-10", response.Booking.CheckInDate)
		s.Equal(int64(2), response.Booking.Nights)
	})

	s.Run("success: idempotent replay returns 200", func() {
		s.SetupTest()
		key := uuid.New()
		s.mockCommands.EXPECT().CreateBookingWithPayment(gomock.Any(), reqBody, s.userID, &key).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: malformed idempotency key", func() {
		s.SetupTest()
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing roomId", mutate: testutil.Field("roomId", nil)},
			{name: "non-positive roomId", mutate: testutil.Field("roomId", 0)},
			{name: "bad date format", mutate: testutil.Field("checkIn", "10/03/2025")},
			{name: "unsupported currency", mutate: testutil.Field("currency", "dollars")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "room not found", err: commands.ErrRoomNotFound, status: http.StatusNotFound, msg: "Room not found"},
			{name: "room unavailable", err: commands.ErrRoomUnavailable, status: http.StatusConflict, msg: "Room is not available"},
			{name: "key reused", err: commands.ErrDuplicateBooking, status: http.StatusConflict, msg: "different request"},
			{name: "key in progress", err: commands.ErrIdempotencyInProgress, status: http.StatusConflict, msg: "being processed"},
			{name: "persistence", err: commands.ErrDatabaseOperationFailed, status: http.StatusInternalServerError, msg: "Internal server error"},
			{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				s.mockCommands.EXPECT().CreateBookingWithPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListAndGet() {
	s.Run("list returns history", func() {
		s.SetupTest()
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithID(2).BuildView(),
			builder.NewBookingBuilder().WithID(1).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(int64(2), response[0].ID)
	})

	s.Run("get scoped to owner", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, int64(7)).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("get rejects non-numeric id", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestConfirm() {
	url := "/bookings/confirm"
	reqBody := reqdto.ConfirmPaymentRequest{PaymentIntentID: "pi_1"}

	s.Run("paid booking returns 200", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().MarkPaid(gomock.Any(), "pi_1", s.userID).Return(true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ConfirmPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Confirmed)
	})

	s.Run("no matching booking returns 404", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().MarkPaid(gomock.Any(), "pi_1", s.userID).Return(false, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("missing payment intent id returns 400", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
