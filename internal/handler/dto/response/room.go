package response

import (
	"bookify/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	Capacity               int32  `json:"capacity"`
	BasePricePerNightCents int64  `json:"basePricePerNightCents"`
	BasePricePerNight      string `json:"basePricePerNight"`
}

type RoomResponse struct {
	ID                     int64  `json:"id"`
	Number                 string `json:"number"`
	Floor                  int32  `json:"floor"`
	IsAvailable            bool   `json:"isAvailable"`
	RoomTypeID             int64  `json:"roomTypeId"`
	RoomTypeName           string `json:"roomTypeName"`
	RoomTypeDescription    string `json:"roomTypeDescription"`
	Capacity               int32  `json:"capacity"`
	BasePricePerNightCents int64  `json:"basePricePerNightCents"`
	BasePricePerNight      string `json:"basePricePerNight"`
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomTypeResponse {
	res := make([]*RoomTypeResponse, len(views))
	for i, v := range views {
		var r RoomTypeResponse
		_ = copier.Copy(&r, v)
		r.BasePricePerNight = formatCents(v.BasePricePerNightCents)
		res[i] = &r
	}
	return res
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var r RoomResponse
	_ = copier.Copy(&r, v)
	r.BasePricePerNight = formatCents(v.BasePricePerNightCents)
	return &r
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = FromRoomView(v)
	}
	return res
}
