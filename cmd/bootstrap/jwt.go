package bootstrap

import (
	"bay-booking/internal/pkg/config"
	"bay-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.MaxAge <= 0 {
		panic("JWT_MAX_AGE must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.MaxAge)
}
