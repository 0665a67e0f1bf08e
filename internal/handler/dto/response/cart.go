package response

import (
	"bookify/internal/handler/dto/request"
	"bookify/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CartItemResponse struct {
	RoomID              int64  `json:"roomId"`
	RoomNumber          string `json:"roomNumber"`
	RoomTypeName        string `json:"roomTypeName"`
	CheckInDate         string `json:"checkIn"`
	CheckOutDate        string `json:"checkOut"`
	Nights              int64  `json:"nights"`
	EstimatedTotalCents int64  `json:"estimatedTotalCents"`
	EstimatedTotal      string `json:"estimatedTotal"`
}

type CartResponse struct {
	Items      []*CartItemResponse `json:"items"`
	TotalCents int64               `json:"totalCents"`
	Total      string              `json:"total"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	items := make([]*CartItemResponse, len(v.Items))
	for i := range v.Items {
		it := &v.Items[i]
		var r CartItemResponse
		_ = copier.Copy(&r, it)
		r.CheckInDate = it.CheckIn.Format(request.DateLayout)
		r.CheckOutDate = it.CheckOut.Format(request.DateLayout)
		r.EstimatedTotal = formatCents(it.EstimatedTotalCents)
		items[i] = &r
	}
	return &CartResponse{
		Items:      items,
		TotalCents: v.TotalCents,
		Total:      formatCents(v.TotalCents),
	}
}
