package response

import (
	"time"

	"bookify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	User        *UserResponse `json:"user"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return &res
}
