//go:build unit

package readstore

import (
	"context"
	"testing"

	"bookify/internal/domain/user"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestFindUser(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantHash   string
		wantActive bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
			wantActive: true,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			email, err := user.NewEmail(tt.email)
			require.NoError(t, err)

			u, err := NewUserReadStore(mockQueries, nil).FindUser(context.Background(), email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, u)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, u.Email().Value())
				assert.Equal(t, tt.wantHash, u.PasswordHash())
				assert.Equal(t, tt.wantActive, u.IsActive())
				assert.Equal(t, user.RoleCustomer, u.Role())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	activeRow := builder.NewUserBuilder().BuildRow()
	inactiveRow := builder.NewUserBuilder().AsInactive().BuildRow()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.FindUserByIDRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			userID:     activeRow.ID,
			mockReturn: activeRow,
		},
		{
			name:       "success - inactive user (for validation)",
			userID:     inactiveRow.ID,
			mockReturn: inactiveRow,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlc.FindUserByIDRow{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     activeRow.ID,
			mockReturn: sqlc.FindUserByIDRow{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Nil(t, view.LastLogin)
				assert.True(t, view.CreatedAt.Equal(builder.FixedNow))
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
