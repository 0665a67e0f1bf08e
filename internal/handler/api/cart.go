package api

import (
	"log/slog"
	"net/http"

	reqdto "bookify/internal/handler/dto/request"
	resdto "bookify/internal/handler/dto/response"
	"bookify/internal/handler/httperr"
	"bookify/internal/handler/middleware"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds     commands.CartCommands
	q        queries.CartQueries
	bookings queries.BookingQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries, bookings queries.BookingQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q, bookings: bookings}
}

// @Summary Add room to cart
// @Description Missing or inverted dates fall back to the last search, then to today and tomorrow
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.AddToCart(c.Request.Context(), userID, req); err != nil {
		httperr.AbortWithRules(c, err, cartErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary View cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.ClearCart(c.Request.Context(), userID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout cart
// @Description Creates a pending booking per item and returns the hosted checkout URL
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest false "Checkout options"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	url, err := h.cmds.Checkout(c.Request.Context(), userID, req.CurrencyOr(""))
	if err != nil {
		httperr.AbortWithRules(c, err, cartErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.CheckoutResponse{CheckoutURL: url})
}

// @Summary Checkout success callback
// @Description Clears the cart and returns the booking history; payment state arrives via webhook
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param session_id query string false "Checkout session ID"
// @Success 200 {array} resdto.BookingResponse
// @Router /api/cart/checkout/success [get]
func (h *CartHandler) CheckoutSuccess(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.ClearCart(c.Request.Context(), userID); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to clear cart after checkout",
			"user_id", userID,
			"session_id", c.Query("session_id"),
			"error", err.Error())
	}

	views, err := h.bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *CartHandler) respondWithCart(c *gin.Context, status int) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.ViewCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resdto.FromCartView(view))
}
