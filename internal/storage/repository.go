package storage

import (
	"context"
	"database/sql"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/guttosm/shukujitsu/internal/domain/models"
)

// HolidaysRepository defines contract for DB operations on materialized holidays.
type HolidaysRepository interface {
	InsertHolidaysBatch(ctx context.Context, rows []models.StoredHoliday) error
	ListByYear(ctx context.Context, year int) ([]models.StoredHoliday, error)
	HasYear(ctx context.Context, year int) (bool, error)
	UpsertMaterializeLog(ctx context.Context, year int, rowCount int) error
	DeleteYear(ctx context.Context, year int) error
}

type holidaysRepository struct {
	db *sql.DB
}

func NewHolidaysRepository(db *sql.DB) HolidaysRepository {
	return &holidaysRepository{db: db}
}

// InsertHolidaysBatch copies all rows into the holidays table in a single transaction.
func (r *holidaysRepository) InsertHolidaysBatch(ctx context.Context, rows []models.StoredHoliday) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"holidays",
		"holiday_date",
		"year",
		"month",
		"day",
		"kind",
		"category",
		"description",
		"weekday",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	// bridge holidays carry no kind
	toNullString := func(s string) interface{} {
		if s == "" {
			return nil
		}
		return s
	}

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.HolidayDate,
			row.Year,
			row.Month,
			row.Day,
			toNullString(row.Kind),
			row.Category,
			row.Description,
			row.Weekday,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListByYear returns the stored holidays of a year ordered by date.
func (r *holidaysRepository) ListByYear(ctx context.Context, year int) ([]models.StoredHoliday, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT holiday_date, year, month, day, COALESCE(kind, ''), category, description, weekday FROM holidays WHERE year = $1 ORDER BY holiday_date`,
		year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StoredHoliday
	for rows.Next() {
		var h models.StoredHoliday
		if err := rows.Scan(&h.HolidayDate, &h.Year, &h.Month, &h.Day, &h.Kind, &h.Category, &h.Description, &h.Weekday); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// HasYear checks if a year was already materialized.
func (r *holidaysRepository) HasYear(ctx context.Context, year int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM materialize_log WHERE year = $1)`, year).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertMaterializeLog records (or refreshes) the materialization of a year.
func (r *holidaysRepository) UpsertMaterializeLog(ctx context.Context, year int, rowCount int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO materialize_log (year, row_count) VALUES ($1, $2) ON CONFLICT (year) DO UPDATE SET row_count = EXCLUDED.row_count, materialized_at = NOW()`,
		year, rowCount)
	return err
}

// DeleteYear removes all stored holidays of a year.
func (r *holidaysRepository) DeleteYear(ctx context.Context, year int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE year = $1`, year)
	return err
}
