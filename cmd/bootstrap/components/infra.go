package components

import (
	"context"
	"log/slog"

	"bookify/internal/infra/cart"
	"bookify/internal/infra/messaging"
	"bookify/internal/infra/stripe"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	paymentModule,
	cartModule,
	messagingModule,
)

var paymentModule = fx.Module("infra/payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		fx.Annotate(
			NewEventVerifier,
			fx.As(new(shared.EventVerifier)),
		),
	),
)

var cartModule = fx.Module("infra/cart",
	fx.Provide(
		fx.Annotate(
			NewRedisClient,
			fx.As(new(redis.Cmdable)),
		),
		fx.Annotate(
			cart.NewRedisStore,
			fx.As(new(shared.CartStore)),
		),
	),
)

var messagingModule = fx.Module("infra/messaging",
	fx.Invoke(StartOutboxRelay),
)

func NewPaymentGateway(cfg config.StripeConfig) (*stripe.Gateway, error) {
	if cfg.SecretKey == "" {
		return nil, errs.New("STRIPE_SECRET_KEY is required")
	}
	return stripe.NewGateway(cfg), nil
}

func NewEventVerifier(cfg config.StripeConfig) (*stripe.WebhookVerifier, error) {
	if cfg.WebhookSecret == "" {
		return nil, errs.New("STRIPE_WEBHOOK_SECRET is required")
	}
	return stripe.NewWebhookVerifier(cfg), nil
}

func NewRedisClient(lc fx.Lifecycle, cfg config.RedisConfig) *redis.Client {
	client := cart.NewRedisClient(cfg)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrapf(err, "failed to reach redis at %s", cfg.Addr)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

// StartOutboxRelay runs the relay for the lifetime of the app when a broker
// is configured. Without one, events stay in the outbox table.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.KafkaConfig, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) {
	if !cfg.Enabled {
		logger.Info("kafka disabled, outbox relay not started")
		return
	}

	relay := messaging.NewOutboxRelay(uow, messaging.NewKafkaProducer(cfg), clk, cfg)
	lc.Append(fx.Hook{
		OnStart: relay.Start,
		OnStop:  relay.Stop,
	})
}
