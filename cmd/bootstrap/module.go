package bootstrap

import (
	"bay-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	PaymentModule,
	RateLimitModule,
	components.PersistenceModule,
	components.UseCaseModule,
	SchedulerModule,
	components.HandlerModule,
)
