//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bookify/internal/handler/api"
	resdto "bookify/internal/handler/dto/response"
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

type RoomHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	q        *queriesmock.MockRoomQueries
	cart     *commandsmock.MockCartCommands
	userID   uuid.UUID
}

func (s *RoomHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.q = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.cart = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewRoomHandler(s.q, s.cart)
	s.router.GET("/room-types", h.ListRoomTypes)
	s.router.GET("/rooms", h.Search)
	s.router.GET("/me/rooms", asUser(s.userID, h.Search))
	s.router.GET("/rooms/:id", h.Get)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func (s *RoomHandlerTestSuite) TestListRoomTypes() {
	s.Run("success", func() {
		s.SetupTest()
		s.q.EXPECT().ListRoomTypes(gomock.Any()).Return([]*queries.RoomTypeView{
			{ID: 1, Name: "Standard", Capacity: 2, BasePricePerNightCents: 10000},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types", nil, "")

		var response []resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("100.00", response[0].BasePricePerNight)
	})
}

func (s *RoomHandlerTestSuite) TestSearch() {
	s.Run("anonymous search does not touch the cart", func() {
		s.SetupTest()
		s.q.EXPECT().SearchAvailable(gomock.Any(), day(10), day(12), gomock.Nil()).
			Return([]*queries.RoomView{builder.NewRoomBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?checkIn=2025-03-10&checkOut=2025-03-12", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("signed-in search remembers dates and filters by type", func() {
		s.SetupTest()
		typeID := int64(2)
		s.q.EXPECT().SearchAvailable(gomock.Any(), day(10), day(12), &typeID).Return([]*queries.RoomView{}, nil)
		s.cart.EXPECT().RememberSearch(gomock.Any(), s.userID, day(10), day(12)).Return(errors.New("redis down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/rooms?checkIn=2025-03-10&checkOut=2025-03-12&roomTypeId=2", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on bad ranges", func() {
		cases := []struct {
			name  string
			query string
		}{
			{name: "check-out equals check-in", query: "checkIn=2025-03-10&checkOut=2025-03-10"},
			{name: "inverted", query: "checkIn=2025-03-12&checkOut=2025-03-10"},
			{name: "missing check-out", query: "checkIn=2025-03-10"},
			{name: "bad format", query: "checkIn=10-03-2025&checkOut=2025-03-12"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search parameters")
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	s.Run("not found", func() {
		s.SetupTest()
		s.q.EXPECT().GetRoom(gomock.Any(), int64(42)).Return(nil, queries.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("found", func() {
		s.SetupTest()
		view := builder.NewRoomBuilder().WithID(3).WithNumber("301").BuildView()
		s.q.EXPECT().GetRoom(gomock.Any(), int64(3)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/3", nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("301", response.Number)
	})
}
