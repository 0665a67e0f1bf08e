//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"bookify/internal/domain/user"
	"bookify/internal/pkg/jwt"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func issue(t *testing.T, duration time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func TestTokenValidator(t *testing.T) {
	validator := usecase.NewTokenValidator(jwt.NewService(secret, time.Hour))
	userID := uuid.New()

	t.Run("valid customer token", func(t *testing.T) {
		gotID, role, err := validator.ValidateToken(issue(t, time.Hour, userID, user.RoleCustomer))

		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, user.RoleCustomer, role)
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
		cause error
	}{
		{
			name:  "expired token",
			token: func(t *testing.T) string { return issue(t, -time.Minute, userID, user.RoleCustomer) },
			cause: jwt.ErrExpiredToken,
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-jwt" },
			cause: jwt.ErrInvalidToken,
		},
		{
			name: "signed with another secret",
			token: func(t *testing.T) string {
				token, _, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, user.RoleCustomer)
				require.NoError(t, err)
				return token
			},
			cause: jwt.ErrInvalidToken,
		},
		{
			name:  "no user",
			token: func(t *testing.T) string { return issue(t, time.Hour, uuid.Nil, user.RoleCustomer) },
		},
		{
			name:  "unknown role",
			token: func(t *testing.T) string { return issue(t, time.Hour, userID, user.Role("operator")) },
			cause: user.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, _, err := validator.ValidateToken(tt.token(t))

			require.Error(t, err)
			assert.ErrorIs(t, err, usecase.ErrUnauthenticated)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
			assert.Equal(t, uuid.Nil, gotID)
		})
	}
}
