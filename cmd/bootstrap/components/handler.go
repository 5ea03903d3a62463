package components

import (
	"bay-booking/internal/handler"
	"bay-booking/internal/handler/api"
	"bay-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBayHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewCleanupHandler,
		api.NewWebhookHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Bays     *api.BayHandler
	Bookings *api.BookingHandler
	Admin    *api.AdminHandler
	Cleanup  *api.CleanupHandler
	Webhooks *api.WebhookHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Bays:     p.Bays,
		Bookings: p.Bookings,
		Admin:    p.Admin,
		Cleanup:  p.Cleanup,
		Webhooks: p.Webhooks,
	}
}
