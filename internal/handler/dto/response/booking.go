package response

import (
	"fmt"
	"time"

	"bookify/internal/handler/dto/request"
	"bookify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	RoomID          int64     `json:"roomId"`
	RoomNumber      string    `json:"roomNumber"`
	RoomTypeName    string    `json:"roomTypeName"`
	CheckInDate     string    `json:"checkIn"`
	CheckOutDate    string    `json:"checkOut"`
	Nights          int64     `json:"nights"`
	TotalCostCents  int64     `json:"totalCostCents"`
	TotalCost       string    `json:"totalCost"`
	Currency        string    `json:"currency"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	Booking      *BookingResponse `json:"booking"`
	ClientSecret string           `json:"clientSecret"`
}

type ConfirmPaymentResponse struct {
	Confirmed bool `json:"confirmed"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var r BookingResponse
	_ = copier.Copy(&r, v)
	r.CheckInDate = v.CheckIn.Format(request.DateLayout)
	r.CheckOutDate = v.CheckOut.Format(request.DateLayout)
	r.TotalCost = formatCents(v.TotalCostCents)
	return &r
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// formatCents renders hundredths of the major unit, e.g. 18000 as "180.00".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
