package components

import (
	"posimarket-core/internal/pkg/clock"
	"posimarket-core/internal/usecase/commands"
	"posimarket-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewCheckoutUseCase,
		commands.NewOrderUseCase,
		commands.NewWalletUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewOrderQueries,
		queries.NewWalletQueries,
	),
)
