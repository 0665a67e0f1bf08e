package bootstrap

import (
	"bookify/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// StorageModule is the subset the one-shot commands need.
var StorageModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
)
