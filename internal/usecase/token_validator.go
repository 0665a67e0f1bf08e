package usecase

import (
	"bookify/internal/domain/user"
	"bookify/internal/pkg/errs"
	"bookify/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errs.New("unauthenticated")

// TokenValidator resolves an access token, from the cookie or a bearer
// header, to the user and role it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &jwtTokenValidator{tokens: tokens}
}

// ValidateToken marks every rejection with ErrUnauthenticated; the jwt cause
// (expired or invalid) stays matchable underneath.
func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.tokens.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrUnauthenticated)
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", errs.Mark(errs.New("token carries no user"), ErrUnauthenticated)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(errs.Wrapf(err, "token role %q", claims.Role), ErrUnauthenticated)
	}

	return claims.UserID, role, nil
}
