package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"posimarket-core/internal/handler/api"
	"posimarket-core/internal/handler/middleware"
	"posimarket-core/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	cleanupHandler *api.CleanupHandler,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	walletHandler *api.WalletHandler,
	cronAuth *middleware.CronAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, cleanupHandler, checkoutHandler, orderHandler, walletHandler, cronAuth)
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
	reservationHandler *api.ReservationHandler,
	cleanupHandler *api.CleanupHandler,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	walletHandler *api.WalletHandler,
	cronAuth *middleware.CronAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/consume", Handler: reservationHandler.ConsumeReservation},
				{Method: http.MethodPost, Path: "/:id/release", Handler: reservationHandler.ReleaseReservation},
			})
		}

		cleanup := apiGroup.Group("/stock-reservations/cleanup")
		{
			addRoutes(cleanup, []route{
				{Method: http.MethodGet, Path: "", Handler: cleanupHandler.CleanupProbe},
				{Method: http.MethodPost, Path: "", Handler: cleanupHandler.RunCleanup, Mw: []gin.HandlerFunc{cronAuth.RequireCronToken()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.CompleteCheckout},
		})

		seller := apiGroup.Group("/seller")
		{
			addRoutes(seller, []route{
				{Method: http.MethodPost, Path: "/pedidos/acao", Handler: orderHandler.ApplyAction},
				{Method: http.MethodGet, Path: "/:id/pedidos", Handler: orderHandler.ListSellerOrders},
				{Method: http.MethodGet, Path: "/:id/saldo", Handler: walletHandler.GetBalance},
				{Method: http.MethodGet, Path: "/:id/transacoes", Handler: walletHandler.GetStatement},
				{Method: http.MethodPost, Path: "/:id/saques", Handler: walletHandler.RequestWithdrawal},
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
