//go:build unit || e2e

package builder

import (
	"time"

	"bookify/internal/domain/user"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "guest@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.Reconstruct(u.ID, email, u.PasswordHash, role, u.LastLogin, u.IsActive, FixedNow, FixedNow), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	var lastLogin pgtype.Timestamptz
	if u.LastLogin != nil {
		lastLogin = pgtype.Timestamptz{Time: *u.LastLogin, Valid: true}
	}

	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		LastLogin:    lastLogin,
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

func (u *UserBuilder) BuildRow() sqlc.FindUserByIDRow {
	infra := u.BuildInfra()
	return sqlc.FindUserByIDRow{
		ID:        infra.ID,
		Email:     infra.Email,
		Role:      infra.Role,
		IsActive:  infra.IsActive,
		LastLogin: infra.LastLogin,
		CreatedAt: infra.CreatedAt,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: FixedNow,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
