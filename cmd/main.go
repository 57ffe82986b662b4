package main

//
//  @title           shukujitsu API
//  @version         1.0
//  @description     Japanese public holidays, substitute and bridge holidays, and business-day arithmetic.
//  @termsOfService  https://github.com/guttosm/shukujitsu
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/shukujitsu
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        holidays
//  @tag.description Holiday listings by year and month
//
//  @tag.name        rules
//  @tag.description Per-rule evaluation with substitute holidays
//
//  @tag.name        days
//  @tag.description Single date lookups
//
//  @tag.name        business-days
//  @tag.description Business-day arithmetic
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/shukujitsu/config"
	_ "github.com/guttosm/shukujitsu/docs" // swagger docs
	"github.com/guttosm/shukujitsu/internal/app"
	"github.com/guttosm/shukujitsu/internal/holiday"
	"github.com/guttosm/shukujitsu/internal/logger"
	"github.com/guttosm/shukujitsu/internal/materialize"
	"github.com/guttosm/shukujitsu/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT or SIGTERM, then shuts the server down
// and runs cleanup.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// printHolidays writes one line per holiday of year (or of month when month > 0):
//
//	2026-01-01 (木) 元旦
func printHolidays(w io.Writer, year, month int, locale holiday.Locale) error {
	var (
		recs []holiday.Record
		err  error
	)
	if month > 0 {
		recs, err = holiday.ForYearMonth(year, time.Month(month))
	} else {
		recs = holiday.ForYear(year)
	}
	if err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "%s (%s) %s\n", r.Date, holiday.WeekdayName(r.Date, locale), r.Description); err != nil {
			return err
		}
	}
	return nil
}

// main is the entry point of the shukujitsu application.
//
// Modes (selected via --mode flag):
//   - api:         Starts the REST API.
//   - list:        Prints the holidays of --year (optionally --month) to stdout.
//   - migrate:     Applies the database migrations.
//   - materialize: Computes years [--from, --to] and stores them in PostgreSQL.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api, list, migrate or materialize")
	year := flag.Int("year", time.Now().Year(), "Year for list mode")
	month := flag.Int("month", 0, "Month for list mode (0 = whole year)")
	locale := flag.String("locale", "native", "Weekday names for list mode: native or en")
	from := flag.Int("from", config.AppConfig.Holidays.MaterializeFrom, "First year to materialize")
	to := flag.Int("to", config.AppConfig.Holidays.MaterializeTo, "Last year to materialize")
	parallel := flag.Int("parallel", config.AppConfig.Holidays.Parallel, "How many years to materialize concurrently (0=auto)")
	force := flag.Bool("force", false, "Rewrite years even if already materialized")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "list":
		loc, ok := holiday.ParseLocale(*locale)
		if !ok {
			logger.L().Fatal().Str("locale", *locale).Msg("unknown locale")
		}
		if err := printHolidays(os.Stdout, *year, *month, loc); err != nil {
			logger.L().Fatal().Err(err).Int("year", *year).Int("month", *month).Msg("list failed")
		}

	case "migrate":
		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := storage.Migrate(db); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Msg("migrations applied")

	case "materialize":
		logger.L().Info().Int("from", *from).Int("to", *to).Msg("running materialization")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		sum, err := materialize.ProcessYears(ctx, db, *from, *to, *parallel, *force)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("materialization failed")
		}
		logger.L().Info().Int("written", sum.Written).Int("skipped", sum.Skipped).Msg("materialization completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
