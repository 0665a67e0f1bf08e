package api

import (
	"log/slog"
	"net/http"
	"strconv"

	reqdto "bookify/internal/handler/dto/request"
	resdto "bookify/internal/handler/dto/response"
	"bookify/internal/handler/httperr"
	"bookify/internal/handler/middleware"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q    queries.RoomQueries
	cart commands.CartCommands
}

func NewRoomHandler(q queries.RoomQueries, cart commands.CartCommands) *RoomHandler {
	return &RoomHandler{q: q, cart: cart}
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 500 {object} httperr.Response
// @Router /api/room-types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.q.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(types))
}

// @Summary Search available rooms
// @Description Rooms flagged available with no pending or paid booking overlapping the range.
// @Description Signed-in users have the dates remembered as cart defaults.
// @Tags rooms
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param roomTypeId query int false "Room type filter"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) Search(c *gin.Context) {
	var req reqdto.RoomSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search parameters", nil)
		return
	}
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search parameters", nil)
		return
	}

	rooms, err := h.q.SearchAvailable(c.Request.Context(), checkIn, checkOut, req.RoomTypeID)
	if err != nil {
		httperr.AbortWithRules(c, err, queryErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}

	if userID, ok := middleware.GetUserID(c); ok {
		if err := h.cart.RememberSearch(c.Request.Context(), userID, checkIn, checkOut); err != nil {
			slog.WarnContext(c.Request.Context(), "failed to remember search dates", "user_id", userID, "error", err.Error())
		}
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID", nil)
		return
	}

	view, err := h.q.GetRoom(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithRules(c, err, queryErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
