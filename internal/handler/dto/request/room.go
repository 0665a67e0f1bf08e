package request

import "time"

// RoomSearchRequest is bound from the query string; booking_dates requires CheckIn before CheckOut.
type RoomSearchRequest struct {
	CheckIn    string `form:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut   string `form:"checkOut" binding:"required,datetime=2006-01-02"`
	RoomTypeID *int64 `form:"roomTypeId" binding:"omitempty,gt=0"`
}

func (r RoomSearchRequest) Dates() (time.Time, time.Time, error) {
	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
