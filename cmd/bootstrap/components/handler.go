package components

import (
	"bookify/internal/handler"
	"bookify/internal/handler/api"
	"bookify/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewCartHandler,
		api.NewWebhookHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
