package api

import (
	"net/http"

	"bookify/internal/handler/httperr"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/queries"
)

var bookingErrorRules = []httperr.Rule{
	{Target: commands.ErrRoomNotFound, Status: http.StatusNotFound, Message: "Room not found"},
	{Target: commands.ErrRoomTypeNotFound, Status: http.StatusNotFound, Message: "Room type not found"},
	{Target: commands.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
	{Target: commands.ErrRoomUnavailable, Status: http.StatusConflict, Message: "Room is not available"},
	{Target: commands.ErrDuplicateBooking, Status: http.StatusConflict, Message: "Idempotency key reused with a different request"},
	{Target: commands.ErrIdempotencyInProgress, Status: http.StatusConflict, Message: "Booking request is currently being processed"},
	{Target: commands.ErrInvalidBookingRequest, Status: http.StatusBadRequest, Message: "Invalid booking request"},
	{Target: commands.ErrEmptyCart, Status: http.StatusBadRequest, Message: "Cart is empty"},
	{Target: commands.ErrPaymentProcessor, Status: http.StatusBadGateway, Message: "Payment processor error"},
}

var cartErrorRules = append([]httperr.Rule{
	{Target: commands.ErrInvalidCartRequest, Status: http.StatusBadRequest, Message: "Invalid cart request"},
}, bookingErrorRules...)

var queryErrorRules = []httperr.Rule{
	{Target: queries.ErrRoomNotFound, Status: http.StatusNotFound, Message: "Room not found"},
	{Target: queries.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
	{Target: queries.ErrInvalidDateRange, Status: http.StatusBadRequest, Message: "Check-in must be before check-out"},
	{Target: queries.ErrUserNotFound, Status: http.StatusNotFound, Message: "User not found"},
	{Target: queries.ErrUserInactive, Status: http.StatusForbidden, Message: "Account is inactive"},
}

var authErrorRules = []httperr.Rule{
	{Target: commands.ErrEmailAlreadyTaken, Status: http.StatusConflict, Message: "Email is already registered"},
	{Target: commands.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "Invalid email or password"},
	{Target: commands.ErrUserInactive, Status: http.StatusForbidden, Message: "Account is inactive"},
	{Target: commands.ErrRegistrationFailed, Status: http.StatusBadRequest, Message: "Registration failed"},
	{Target: commands.ErrAuthenticationFailed, Status: http.StatusBadRequest, Message: "Invalid request data"},
}
