// Package materialize computes holiday years with the engine and persists
// them to PostgreSQL.
package materialize

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/shukujitsu/internal/domain/models"
	"github.com/guttosm/shukujitsu/internal/holiday"
	"github.com/guttosm/shukujitsu/internal/logger"
	"github.com/guttosm/shukujitsu/internal/storage"
)

const maxParallelCap = 16

// ErrInvalidRange is returned when from is after to.
var ErrInvalidRange = errors.New("invalid year range")

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.HolidaysRepository {
	return storage.NewHolidaysRepository(db)
}

// Summary reports what a ProcessYears run did.
type Summary struct {
	Written int
	Skipped int
	Rows    int
}

// ProcessYears materializes every year in [from, to].
//
// Behavior:
//   - Years already recorded in materialize_log are skipped unless force is set,
//     in which case their rows are deleted and rewritten.
//   - At most parallel years are processed at once (NumCPU when parallel <= 0).
//   - The first failing year cancels the remaining work and its error is returned.
func ProcessYears(ctx context.Context, db *sql.DB, from, to, parallel int, force bool) (Summary, error) {
	if from > to {
		return Summary{}, fmt.Errorf("%w: %d > %d", ErrInvalidRange, from, to)
	}
	repo := repoCtor(db)
	log := logger.Component("materialize")

	total := to - from + 1
	maxParallel := parallel
	if maxParallel <= 0 {
		maxParallel = runtime.NumCPU()
	}
	if maxParallel > maxParallelCap {
		maxParallel = maxParallelCap
	}
	if maxParallel > total {
		maxParallel = total
	}

	log.Info().Int("from", from).Int("to", to).Int("max_parallel", maxParallel).Bool("force", force).Msg("materialize start")

	results := make([]yearResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i := 0; i < total; i++ {
		year := from + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := materializeYear(gctx, repo, year, force)
			if err != nil {
				return fmt.Errorf("year %d: %w", year, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, r := range results {
		if r.skipped {
			sum.Skipped++
			continue
		}
		sum.Written++
		sum.Rows += r.rows
	}
	log.Info().Int("written", sum.Written).Int("skipped", sum.Skipped).Int("rows", sum.Rows).Msg("materialize done")
	return sum, nil
}

type yearResult struct {
	skipped bool
	rows    int
}

func materializeYear(ctx context.Context, repo storage.HolidaysRepository, year int, force bool) (yearResult, error) {
	start := time.Now()
	log := logger.Component("materialize")

	exists, err := repo.HasYear(ctx, year)
	if err != nil {
		log.Error().Int("year", year).Err(err).Msg("check materialize log failed")
		return yearResult{}, fmt.Errorf("check materialize log: %w", err)
	}
	if exists && !force {
		log.Info().Int("year", year).Bool("skipped", true).Msg("already materialized")
		return yearResult{skipped: true}, nil
	}
	if exists {
		if err := repo.DeleteYear(ctx, year); err != nil {
			log.Error().Int("year", year).Err(err).Msg("delete existing failed")
			return yearResult{}, fmt.Errorf("delete existing: %w", err)
		}
	}

	records := holiday.ForYear(year)
	rows := make([]models.StoredHoliday, 0, len(records))
	for _, r := range records {
		rows = append(rows, models.FromRecord(r))
	}

	if err := repo.InsertHolidaysBatch(ctx, rows); err != nil {
		log.Error().Int("year", year).Dur("elapsed", time.Since(start)).Err(err).Msg("insert failed")
		return yearResult{}, fmt.Errorf("insert holidays: %w", err)
	}
	if err := repo.UpsertMaterializeLog(ctx, year, len(rows)); err != nil {
		log.Error().Int("year", year).Err(err).Msg("update materialize log failed")
		return yearResult{}, fmt.Errorf("upsert materialize log: %w", err)
	}

	log.Info().Int("year", year).Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("year done")
	return yearResult{rows: len(rows)}, nil
}
