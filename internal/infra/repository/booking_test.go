//go:build unit

package repository

import (
	"context"
	"testing"

	"bookify/internal/domain/booking"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBookingWriteQueries) MarkBookingsPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingsPaidParams) ([]int64, error) {
	args := m.Called(ctx, db, arg)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func TestBookingRepositoryCreate(t *testing.T) {
	b, err := builder.NewBookingBuilder().WithPaymentIntent("").BuildDomain()
	require.NoError(t, err)

	t.Run("maps entity and stores empty intent as NULL", func(t *testing.T) {
		q := new(MockBookingWriteQueries)
		db := new(mockDBTX)
		q.On("CreateBooking", mock.Anything, db, mock.MatchedBy(func(p sqlc.CreateBookingParams) bool {
			return p.UserID == b.UserID() &&
				p.RoomID == b.RoomID() &&
				p.TotalCostCents == b.Total().Cents() &&
				p.Status == "Pending" &&
				!p.StripePaymentIntentID.Valid &&
				p.CheckIn.Time.Equal(b.Stay().CheckIn())
		})).Return(int64(42), nil)

		id, err := NewBookingRepository(q).Create(context.Background(), db, b)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		q.AssertExpectations(t)
	})

	t.Run("foreign key violation is classified", func(t *testing.T) {
		q := new(MockBookingWriteQueries)
		db := new(mockDBTX)
		q.On("CreateBooking", mock.Anything, db, mock.Anything).Return(int64(0), &pgconn.PgError{Code: "23503"})

		_, err := NewBookingRepository(q).Create(context.Background(), db, b)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestBookingRepositoryMarkPaidByIDs(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		ids        []int64
		userID     *uuid.UUID
		returnIDs  []int64
		returnErr  error
		expectCall bool
		wantIDs    []int64
		wantErr    bool
	}{
		{name: "no ids skips query"},
		{name: "scoped to user", ids: []int64{1, 2}, userID: &userID, returnIDs: []int64{1}, expectCall: true, wantIDs: []int64{1}},
		{name: "unscoped", ids: []int64{3}, returnIDs: []int64{3}, expectCall: true, wantIDs: []int64{3}},
		{name: "db error", ids: []int64{3}, returnErr: assert.AnError, expectCall: true, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookingWriteQueries)
			db := new(mockDBTX)
			if tt.expectCall {
				q.On("MarkBookingsPaid", mock.Anything, db, mock.MatchedBy(func(p sqlc.MarkBookingsPaidParams) bool {
					return p.PaymentIntentID == "pi_1" && p.UserID.Valid == (tt.userID != nil)
				})).Return(tt.returnIDs, tt.returnErr)
			}

			got, err := NewBookingRepository(q).MarkPaidByIDs(context.Background(), db, tt.ids, "pi_1", tt.userID)
			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, got)
			q.AssertExpectations(t)
		})
	}
}

func TestBookingRepositoryUpdateStatus(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	b.MarkPaid(builder.FixedNow)

	q := new(MockBookingWriteQueries)
	db := new(mockDBTX)
	q.On("UpdateBookingStatus", mock.Anything, db, mock.MatchedBy(func(p sqlc.UpdateBookingStatusParams) bool {
		return p.Status == booking.StatusPaid.String()
	})).Return(nil)

	require.NoError(t, NewBookingRepository(q).UpdateStatus(context.Background(), db, b))
	q.AssertExpectations(t)
}
