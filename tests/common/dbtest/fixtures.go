//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain password of every user made by CreateTestUser.
const DefaultPassword = "password123"

// bcrypt hash of DefaultPassword
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const (
	StandardRoomID    int64 = 1
	DeluxeRoomID      int64 = 2
	UnavailableRoomID int64 = 3

	StandardNightlyCents int64 = 10000
	DeluxeNightlyCents   int64 = 18000
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBooking(t *testing.T, db DBLike, userID uuid.UUID, roomID int64, checkIn, checkOut, paymentIntentID string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (user_id, room_id, check_in, check_out, total_cost_cents, currency, stripe_payment_intent_id)
		VALUES ($1, $2, $3, $4, 10000, 'usd', NULLIF($5, ''))
		RETURNING id`,
		userID, roomID, checkIn, checkOut, paymentIntentID).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts the room catalogue every test starts from
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO room_types (id, name, description, capacity, base_price_per_night) VALUES
		    (1, 'Standard', 'Queen bed', 2, %d),
		    (2, 'Deluxe', 'King bed and city view', 2, %d)
		ON CONFLICT (id) DO NOTHING;
	`, StandardNightlyCents, DeluxeNightlyCents))
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (id, number, room_type_id, floor, is_available) VALUES
		    (1, '101', 1, 1, true),
		    (2, '201', 2, 2, true),
		    (3, '102', 1, 1, false)
		ON CONFLICT (id) DO NOTHING;
		SELECT setval('room_types_id_seq', 2);
		SELECT setval('rooms_id_seq', 3);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
