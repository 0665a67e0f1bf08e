//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"bookify/internal/domain/user"
	"bookify/internal/handler/dto/request"
	"bookify/internal/handler/dto/response"
	"bookify/tests/common/authtest"
	"bookify/tests/common/dbtest"
	"bookify/tests/common/httptest"
	"bookify/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	confirmURL  = "/api/bookings/confirm"
	webhookURL  = "/api/webhooks/stripe"
)

type bookingSuite struct {
	e2e.SharedSuite
	token string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
}

func (s *bookingSuite) create(key string, body request.CreateBookingRequest) (int, response.CreateBookingResponse) {
	headers := map[string]string{"Authorization": "Bearer " + s.token}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, body, headers)

	var res response.CreateBookingResponse
	if w.Code < 300 {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	}
	return w.Code, res
}

func (s *bookingSuite) count(query string, args ...any) int {
	return dbtest.CountRows(s.T(), s.DB, query, args...)
}

func intentSucceeded(eventID, intentID string, amount int64) []byte {
	return fmt.Appendf(nil, `{
		"id": %q,
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {
			"id": %q,
			"object": "payment_intent",
			"amount_received": %d,
			"currency": "usd",
			"status": "succeeded"
		}}
	}`, eventID, intentID, amount)
}

func (s *bookingSuite) TestCreateBooking() {
	stay := request.CreateBookingRequest{RoomID: dbtest.StandardRoomID, CheckIn: "2030-03-10", CheckOut: "2030-03-12"}

	s.Run("creates a pending booking with a payment intent", func() {
		t := s.T()

		code, res := s.create(uuid.NewString(), stay)

		require.Equal(t, http.StatusCreated, code)
		require.NotNil(t, res.Booking)
		require.Equal(t, "Pending", res.Booking.Status)
		require.Equal(t, int64(2), res.Booking.Nights)
		require.Equal(t, 2*dbtest.StandardNightlyCents, res.Booking.TotalCostCents)
		require.NotNil(t, res.Booking.PaymentIntentID)
		require.Equal(t, *res.Booking.PaymentIntentID+"_secret", res.ClientSecret)

		intents := s.Gateway.Intents()
		require.Len(t, intents, 1)
		require.Equal(t, 2*dbtest.StandardNightlyCents, intents[0].AmountMinor)

		require.Equal(t, 1, s.count("SELECT COUNT(*) FROM outbox_events WHERE kind = 'booking.created'"))
	})

	s.Run("replays the same idempotency key", func() {
		t := s.T()
		key := uuid.NewString()

		code, first := s.create(key, stay)
		require.Equal(t, http.StatusCreated, code)

		code, second := s.create(key, stay)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, first.Booking.ID, second.Booking.ID)
		require.Equal(t, first.ClientSecret, second.ClientSecret)

		require.Equal(t, 1, s.count("SELECT COUNT(*) FROM bookings"))
		require.Len(t, s.Gateway.Intents(), 1)
	})

	s.Run("unavailable room", func() {
		code, _ := s.create("", request.CreateBookingRequest{RoomID: dbtest.UnavailableRoomID, CheckIn: "2030-03-10", CheckOut: "2030-03-12"})
		require.Equal(s.T(), http.StatusConflict, code)
	})

	s.Run("unknown room", func() {
		code, _ := s.create("", request.CreateBookingRequest{RoomID: 999, CheckIn: "2030-03-10", CheckOut: "2030-03-12"})
		require.Equal(s.T(), http.StatusNotFound, code)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, stay, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *bookingSuite) TestPaymentFlow() {
	s.Run("webhook records the payment once and confirm marks the booking paid", func() {
		t := s.T()

		code, created := s.create(uuid.NewString(), request.CreateBookingRequest{
			RoomID: dbtest.DeluxeRoomID, CheckIn: "2030-05-01", CheckOut: "2030-05-02",
		})
		require.Equal(t, http.StatusCreated, code)
		intentID := *created.Booking.PaymentIntentID

		payload := intentSucceeded("evt_1", intentID, dbtest.DeluxeNightlyCents)
		headers := map[string]string{"Stripe-Signature": e2e.SignWebhook(t, payload, s.Config.Stripe.WebhookSecret)}

		for range 2 {
			w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, headers)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			httptest.AssertHeaders(t, w, httptest.JSONHeaders)
		}
		require.Equal(t, 1, s.count("SELECT COUNT(*) FROM transactions WHERE payment_intent_id = $1", intentID))
		require.Equal(t, 1, s.count("SELECT COUNT(*) FROM outbox_events WHERE kind = 'payment.recorded'"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			request.ConfirmPaymentRequest{PaymentIntentID: intentID}, s.token)
		var confirmed response.ConfirmPaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.True(t, confirmed.Confirmed)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", bookingsURL, created.Booking.ID), nil, s.token)
		var view response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "Paid", view.Status)
	})

	s.Run("bad signature is rejected", func() {
		t := s.T()
		payload := intentSucceeded("evt_2", "pi_forged", 100)
		headers := map[string]string{"Stripe-Signature": e2e.SignWebhook(t, payload, "whsec_wrong")}

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, headers)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Zero(t, s.count("SELECT COUNT(*) FROM transactions"))
	})

	s.Run("confirming another user's intent finds nothing", func() {
		t := s.T()
		code, created := s.create("", request.CreateBookingRequest{RoomID: dbtest.StandardRoomID, CheckIn: "2030-06-01", CheckOut: "2030-06-03"})
		require.Equal(t, http.StatusCreated, code)

		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			request.ConfirmPaymentRequest{PaymentIntentID: *created.Booking.PaymentIntentID}, other)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestListBookings() {
	s.Run("only the caller's bookings", func() {
		t := s.T()
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleCustomer))
		dbtest.CreateTestBooking(t, s.DB, otherID, dbtest.StandardRoomID, "2030-01-01", "2030-01-02", "")

		code, _ := s.create("", request.CreateBookingRequest{RoomID: dbtest.DeluxeRoomID, CheckIn: "2030-02-01", CheckOut: "2030-02-04"})
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.token)
		var list []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, dbtest.DeluxeRoomID, list[0].RoomID)
		require.Equal(t, int64(3), list[0].Nights)
	})
}
