package bootstrap

import (
	"salonflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	FeedModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
