package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookify/internal/domain/user"
	"bookify/internal/handler/api"
	"bookify/internal/handler/middleware"
	"bookify/internal/handler/validation"
	"bookify/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Room    *api.RoomHandler
	Booking *api.BookingHandler
	Cart    *api.CartHandler
	Webhook *api.WebhookHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	cart *api.CartHandler,
	webhook *api.WebhookHandler,
) Handlers {
	return Handlers{Auth: auth, Room: room, Booking: booking, Cart: cart, Webhook: webhook}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customer := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleCustomer)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/room-types", Handler: h.Room.ListRoomTypes},
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.Search, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			{Method: http.MethodGet, Path: "/rooms/:id", Handler: h.Room.Get},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(customer...)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodPost, Path: "/confirm", Handler: h.Booking.Confirm},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(customer...)
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.View},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
				{Method: http.MethodGet, Path: "/checkout/success", Handler: h.Cart.CheckoutSuccess},
			})
		}

		// authenticated by the processor signature, not by a session
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/stripe", Handler: h.Webhook.Stripe},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
