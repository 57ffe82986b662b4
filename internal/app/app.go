package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shukujitsu/config"
	"github.com/guttosm/shukujitsu/internal/api"
	"github.com/guttosm/shukujitsu/internal/businessday"
	"github.com/guttosm/shukujitsu/internal/cache"
	"github.com/guttosm/shukujitsu/internal/logger"
	"github.com/guttosm/shukujitsu/internal/service"
	"github.com/guttosm/shukujitsu/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the year cache and the business-day calendar.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Connects to PostgreSQL when POSTGRES_ENABLED is set; materialized years are
//     then served from the holidays table and readiness pings it.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	years, err := cache.NewYears(cfg.Holidays.CacheSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize year cache: %w", err)
	}

	var (
		ping  func(ctx context.Context) error
		store service.HolidayStore
	)
	cleanup := func() {}
	if cfg.Postgres.Enabled {
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		ping = db.PingContext
		store = storage.NewHolidaysRepository(db)
		cleanup = func() { _ = db.Close() }
	} else {
		logger.L().Info().Msg("postgres disabled; serving from in-memory engine only")
	}

	svc := service.NewHolidayService(years, businessday.New(), store)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimit:      cfg.Server.RateLimit,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	api.NewHealthHandler(ping).Register(router)

	return router, cleanup, nil
}
