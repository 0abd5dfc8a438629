package components

import (
	"posimarket-core/internal/handler"
	"posimarket-core/internal/handler/api"
	"posimarket-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewCleanupHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewWalletHandler,
		middleware.NewCronAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
