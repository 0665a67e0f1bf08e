package bootstrap

import (
	"bookify/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections exposes the parts of config.Config that adapters take directly.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	func(cfg config.Config) config.KafkaConfig { return cfg.Kafka },
)
