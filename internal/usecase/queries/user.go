package queries

import (
	"context"

	"github.com/google/uuid"

	"bookify/internal/infra"
	"bookify/internal/pkg/errs"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrUserInactive    = errs.New("user inactive")
	ErrUserQueryFailed = errs.New("user query failed")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

// GetCurrentUser backs /auth/me. A deactivated account is refused even while
// its token is still valid.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Mark(err, ErrUserQueryFailed)
	case !view.IsActive:
		return nil, ErrUserInactive
	}
	return view, nil
}
