package components

import (
	"salonflow/internal/handler"
	"salonflow/internal/handler/api"
	"salonflow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewFulfillmentHandler,
		api.NewVoucherHandler,
		api.NewGiftCertificateHandler,
		api.NewStaffHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
