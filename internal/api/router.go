package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/shukujitsu/internal/middleware"
)

// RouterOptions tunes the global middlewares.
type RouterOptions struct {
	RateLimit      int           // requests per client per minute; <= 0 uses middleware.DefaultRateLimit
	RequestTimeout time.Duration // per-request deadline; <= 0 uses middleware.DefaultRequestTimeout
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimit),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/holidays/:year", handler.ListHolidays)
		v1.GET("/holidays/:year/:month", handler.ListMonthHolidays)
		v1.GET("/holidays/:year/:month/days", handler.ListDayNumbers)
		v1.GET("/dates/:year", handler.ListDates)
		v1.GET("/rules/:year", handler.ListRules)
		v1.GET("/bridge/:year", handler.ListBridges)
		v1.GET("/date/:date", handler.GetDay)

		bd := v1.Group("/business-days")
		bd.GET("/next", handler.NextBusinessDay)
		bd.GET("/previous", handler.PreviousBusinessDay)
		bd.GET("/add", handler.AddBusinessDays)
	}

	return router
}
