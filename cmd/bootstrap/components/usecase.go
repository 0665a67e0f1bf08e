package components

import (
	"bookify/internal/domain/booking"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/password"
	"bookify/internal/usecase"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewHasher,
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCartCommands,
		commands.NewPaymentEventCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewCartQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
