package shared

import (
	"context"
	"time"

	"bookify/internal/domain/booking"
	"bookify/internal/domain/payment"
	"bookify/internal/domain/room"
	"bookify/internal/domain/user"
	sqlc "bookify/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Transactions() TransactionRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id int64) (*room.Room, error)
	RoomTypeByID(ctx context.Context, id int64) (*room.RoomType, error)
	BookingByID(ctx context.Context, id int64) (*booking.Booking, error)
	// UserBookingByPaymentIntent locks the row when called inside a transaction.
	UserBookingByPaymentIntent(ctx context.Context, paymentIntentID string, userID uuid.UUID) (*booking.Booking, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	TransactionExistsForIntent(ctx context.Context, paymentIntentID string) (bool, error)
	TransactionExistsForSession(ctx context.Context, checkoutSessionID, paymentIntentID string) (bool, error)
	UserByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// MarkPaidByIDs flips only Pending rows and returns the ids it changed.
	MarkPaidByIDs(ctx context.Context, tx sqlc.DBTX, ids []int64, paymentIntentID string, userID *uuid.UUID) ([]int64, error)
}

type TransactionRepository interface {
	// Record reports false when a row for the same intent or session already exists.
	Record(ctx context.Context, tx sqlc.DBTX, t *payment.Transaction) (bool, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, bookingID int64) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (bool, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, runAt time.Time, maxAttempts int32) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
