package components

import (
	"salonflow/internal/pkg/clock"
	"salonflow/internal/usecase/commands"
	"salonflow/internal/usecase/queries"
	"salonflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewPgxTxManager,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewFulfillmentCoordinator,
		commands.NewVoucherCommands,
		commands.NewGiftCertificateCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCommissionQueries,
	),
)
