package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salonflow/internal/domain/staff"
	"salonflow/internal/handler/api"
	"salonflow/internal/handler/middleware"
	"salonflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	fulfillmentHandler *api.FulfillmentHandler,
	voucherHandler *api.VoucherHandler,
	certHandler *api.GiftCertificateHandler,
	staffHandler *api.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, fulfillmentHandler, voucherHandler, certHandler, staffHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	fulfillmentHandler *api.FulfillmentHandler,
	voucherHandler *api.VoucherHandler,
	certHandler *api.GiftCertificateHandler,
	staffHandler *api.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.ConfirmBooking},
				{Method: http.MethodPost, Path: "/:id/start", Handler: bookingHandler.StartBooking},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: bookingHandler.CompleteBooking},
				{Method: http.MethodPost, Path: "/:id/watch", Handler: fulfillmentHandler.WatchBooking},
				{Method: http.MethodPut, Path: "/:id/discount", Handler: bookingHandler.SetGrandDiscount,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleManager)}},
			})
		}

		instances := apiGroup.Group("/instances")
		{
			addRoutes(instances, []route{
				{Method: http.MethodPost, Path: "/:id/transition", Handler: fulfillmentHandler.Transition},
			})
		}

		vouchers := apiGroup.Group("/vouchers")
		{
			addRoutes(vouchers, []route{
				{Method: http.MethodGet, Path: "/:code", Handler: voucherHandler.Check},
			})
		}

		certs := apiGroup.Group("/gift-certificates")
		{
			addRoutes(certs, []route{
				{Method: http.MethodGet, Path: "/:code", Handler: certHandler.Check},
				{Method: http.MethodPost, Path: "/claim", Handler: certHandler.Claim},
			})
		}

		staffGroup := apiGroup.Group("/staff")
		{
			addRoutes(staffGroup, []route{
				{Method: http.MethodGet, Path: "/:id/commissions", Handler: staffHandler.Commissions,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleManager)}},
			})
		}
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
