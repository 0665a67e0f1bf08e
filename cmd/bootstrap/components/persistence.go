package components

import (
	"bookify/internal/infra/readstore"
	"bookify/internal/infra/seed"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/infra/uow"
	"bookify/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write-side repositories are built per transaction by the unit of work.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
		// Seed
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(seed.SeedQueries)),
		),
		seed.NewSeeder,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
