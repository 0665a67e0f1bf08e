package bootstrap

import (
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"
	"bookify/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Secret == "" {
		return nil, errs.New("JWT_SECRET is required")
	}
	if cfg.JWT.Duration <= 0 {
		return nil, errs.Newf("invalid JWT_DURATION: %s", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
