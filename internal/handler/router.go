package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bay-booking/internal/domain/user"
	"bay-booking/internal/handler/api"
	"bay-booking/internal/handler/middleware"
	"bay-booking/internal/infra/ratelimit"
	"bay-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Bays     *api.BayHandler
	Bookings *api.BookingHandler
	Admin    *api.AdminHandler
	Cleanup  *api.CleanupHandler
	Webhooks *api.WebhookHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter ratelimit.Limiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter ratelimit.Limiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bays := apiGroup.Group("/bays")
		bays.Use(middleware.RateLimit(limiter, "bays"))
		addRoutes(bays, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bays.List},
			{Method: http.MethodGet, Path: "/:id/windows", Handler: h.Bays.Windows},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(middleware.RateLimit(limiter, "bookings"))
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Bookings.Checkout, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/payment/:paymentId", Handler: h.Bookings.GetByPayment},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Bookings.Confirm},
			})

			authRequired := bookings.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Bookings.ListMine, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapViewOwnBookings)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(middleware.RateLimit(limiter, "admin"), authMiddleware.RequireAuth())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/bookings/:id/extend", Handler: h.Admin.Extend, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapExtendBooking)}},
			{Method: http.MethodPut, Path: "/slots/:id/status", Handler: h.Admin.SetSlotStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapBlockSlots)}},
		})

		cron := apiGroup.Group("/cron")
		cron.Use(middleware.RequireCronSecret(cfg.Cron.Secret))
		addRoutes(cron, []route{
			{Method: http.MethodPost, Path: "/cleanup", Handler: h.Cleanup.Run},
		})

		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/stripe", Handler: h.Webhooks.Stripe},
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
