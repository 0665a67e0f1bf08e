package readstore

import (
	"context"

	"github.com/google/uuid"

	"bookify/internal/domain/user"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/pgconv"
	"bookify/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindUser loads the full entity, password hash included, for authentication.
func (r *UserReadStore) FindUser(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid role", err)
	}
	storedEmail, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid email", err)
	}

	return user.Reconstruct(
		row.ID,
		storedEmail,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
