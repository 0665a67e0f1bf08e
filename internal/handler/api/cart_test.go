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
	commandsmock "bookify/tests/mock/commands"
	queriesmock "bookify/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockCartCommands
	cartQ    *queriesmock.MockCartQueries
	bookingQ *queriesmock.MockBookingQueries
	userID   uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.cartQ = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.bookingQ = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewCartHandler(s.cmds, s.cartQ, s.bookingQ)
	s.router.POST("/cart/items", asUser(s.userID, h.AddItem))
	s.router.GET("/cart", asUser(s.userID, h.View))
	s.router.DELETE("/cart", asUser(s.userID, h.Clear))
	s.router.POST("/cart/checkout", asUser(s.userID, h.Checkout))
	s.router.GET("/cart/checkout/success", asUser(s.userID, h.CheckoutSuccess))
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartView() *queries.CartView {
	b := builder.NewBookingBuilder()
	return &queries.CartView{
		Items: []queries.CartItemView{{
			RoomID:              1,
			RoomNumber:          "101",
			RoomTypeName:        "Standard",
			CheckIn:             b.CheckIn,
			CheckOut:            b.CheckOut,
			Nights:              2,
			EstimatedTotalCents: 20000,
		}},
		TotalCents: 20000,
	}
}

func (s *CartHandlerTestSuite) TestAddItem() {
	checkIn := "2025-03-10"
	reqBody := reqdto.AddCartItemRequest{RoomID: 1, CheckIn: &checkIn}

	s.Run("success: returns the priced cart", func() {
		s.SetupTest()
		s.cmds.EXPECT().AddToCart(gomock.Any(), s.userID, reqBody).Return(nil)
		s.cartQ.EXPECT().ViewCart(gomock.Any(), s.userID).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal("101", response.Items[0].RoomNumber)
		s.Equal("2025-03-10", response.Items[0].CheckInDate)
		s.Equal("200.00", response.Total)
	})

	s.Run("error: unknown room is 404", func() {
		s.SetupTest()
		s.cmds.EXPECT().AddToCart(gomock.Any(), s.userID, gomock.Any()).Return(commands.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: malformed date is 400", func() {
		s.SetupTest()
		bad := "tomorrow"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items",
			reqdto.AddCartItemRequest{RoomID: 1, CheckOut: &bad}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success: 204", func() {
		s.SetupTest()
		s.cmds.EXPECT().ClearCart(gomock.Any(), s.userID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestCheckout() {
	s.Run("success: returns checkout url with default currency", func() {
		s.SetupTest()
		s.cmds.EXPECT().Checkout(gomock.Any(), s.userID, "").Return("https://checkout.test/cs_1", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/checkout", nil, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("https://checkout.test/cs_1", response["checkoutUrl"])
	})

	s.Run("success: requested currency is lower-cased", func() {
		s.SetupTest()
		s.cmds.EXPECT().Checkout(gomock.Any(), s.userID, "jpy").Return("https://checkout.test/cs_2", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/checkout", reqdto.CheckoutRequest{Currency: "JPY"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "empty cart", err: commands.ErrEmptyCart, status: http.StatusBadRequest},
			{name: "room gone", err: commands.ErrRoomNotFound, status: http.StatusNotFound},
			{name: "processor failure", err: commands.ErrPaymentProcessor, status: http.StatusBadGateway},
			{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				s.cmds.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any()).Return("", tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/checkout", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestCheckoutSuccess() {
	s.Run("clears cart and returns history", func() {
		s.SetupTest()
		s.cmds.EXPECT().ClearCart(gomock.Any(), s.userID).Return(nil)
		s.bookingQ.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart/checkout/success?session_id=cs_1", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("clear failure still returns history", func() {
		s.SetupTest()
		s.cmds.EXPECT().ClearCart(gomock.Any(), s.userID).Return(commands.ErrCartStoreFailed)
		s.bookingQ.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]*queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart/checkout/success", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
