package api

import (
	"net/http"
	"strconv"

	reqdto "bookify/internal/handler/dto/request"
	resdto "bookify/internal/handler/dto/response"
	"bookify/internal/handler/httperr"
	"bookify/internal/handler/middleware"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Books a room and opens a payment intent. A processor failure still creates the
// @Description booking with an empty client secret. Replays of a completed Idempotency-Key return 200.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	idempotencyKey, err := parseIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBookingWithPayment(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		httperr.AbortWithRules(c, err, bookingErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.CreateBookingResponse{
		Booking:      resdto.FromBookingView(result.Booking),
		ClientSecret: result.ClientSecret,
	})
}

// @Summary Booking history
// @Description Current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithRules(c, err, queryErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Confirm payment
// @Description Marks the caller's booking for the payment intent as paid
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmPaymentRequest true "Confirm request"
// @Success 200 {object} resdto.ConfirmPaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	paid, err := h.cmds.MarkPaid(c.Request.Context(), req.PaymentIntentID, userID)
	if err != nil {
		httperr.AbortWithRules(c, err, bookingErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !paid {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ConfirmPaymentResponse{Confirmed: true})
}

func parseIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
