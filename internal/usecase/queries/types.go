package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomTypeView represents read-optimized room type data
type RoomTypeView struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	Capacity               int32  `json:"capacity"`
	BasePricePerNightCents int64  `json:"base_price_per_night_cents"`
}

// RoomView represents a room joined with its type
type RoomView struct {
	ID                     int64  `json:"id"`
	Number                 string `json:"number"`
	Floor                  int32  `json:"floor"`
	IsAvailable            bool   `json:"is_available"`
	RoomTypeID             int64  `json:"room_type_id"`
	RoomTypeName           string `json:"room_type_name"`
	RoomTypeDescription    string `json:"room_type_description"`
	Capacity               int32  `json:"capacity"`
	BasePricePerNightCents int64  `json:"base_price_per_night_cents"`
}

// BookingView represents a booking joined with room number and room type name
type BookingView struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	RoomID          int64     `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	RoomTypeName    string    `json:"room_type_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int64     `json:"nights"`
	TotalCostCents  int64     `json:"total_cost_cents"`
	Currency        string    `json:"currency"`
	PaymentIntentID *string   `json:"payment_intent_id,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type CartItemView struct {
	RoomID              int64     `json:"room_id"`
	RoomNumber          string    `json:"room_number"`
	RoomTypeName        string    `json:"room_type_name"`
	CheckIn             time.Time `json:"check_in"`
	CheckOut            time.Time `json:"check_out"`
	Nights              int64     `json:"nights"`
	EstimatedTotalCents int64     `json:"estimated_total_cents"`
}

type CartView struct {
	Items      []CartItemView `json:"items"`
	TotalCents int64          `json:"total_cents"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
