package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/shukujitsu/internal/businessday"
	"github.com/guttosm/shukujitsu/internal/cache"
	"github.com/guttosm/shukujitsu/internal/domain/models"
	"github.com/guttosm/shukujitsu/internal/holiday"
	"github.com/guttosm/shukujitsu/internal/logger"
)

// Years outside this range are rejected; dates must stay printable as YYYY-MM-DD.
const (
	MinYear = 1
	MaxYear = 9999
)

// HolidayService defines the holiday queries exposed to the HTTP layer.
// Invalid years and months yield errors wrapping holiday.ErrInvalidArgument.
type HolidayService interface {
	Holidays(ctx context.Context, year int) ([]holiday.Record, error)
	MonthHolidays(ctx context.Context, year int, month time.Month) ([]holiday.Record, error)
	Dates(ctx context.Context, year int) ([]holiday.Date, error)
	MonthDates(ctx context.Context, year int, month time.Month) ([]holiday.Date, error)
	DayNumbers(ctx context.Context, year int, month time.Month) ([]int, error)
	Rules(ctx context.Context, year int) ([]holiday.Evaluation, error)
	MonthRules(ctx context.Context, year int, month time.Month) ([]holiday.Evaluation, error)
	Bridges(ctx context.Context, year int) ([]holiday.Date, error)
	DayInfo(ctx context.Context, d holiday.Date, locale holiday.Locale) (models.DayInfo, error)
	NextBusinessDay(ctx context.Context, d holiday.Date) (holiday.Date, error)
	PreviousBusinessDay(ctx context.Context, d holiday.Date) (holiday.Date, error)
	AddBusinessDays(ctx context.Context, d holiday.Date, n int) (holiday.Date, error)
}

// HolidayStore serves materialized years. storage.HolidaysRepository satisfies it.
type HolidayStore interface {
	ListByYear(ctx context.Context, year int) ([]models.StoredHoliday, error)
}

type holidayService struct {
	years    *cache.Years
	calendar *businessday.Calendar
	store    HolidayStore
}

// NewHolidayService wires the year cache and the business-day calendar.
// store may be nil; when set, whole years are served from it and the cache
// only answers years that were never materialized.
func NewHolidayService(years *cache.Years, calendar *businessday.Calendar, store HolidayStore) HolidayService {
	return &holidayService{years: years, calendar: calendar, store: store}
}

func (s *holidayService) Holidays(ctx context.Context, year int) ([]holiday.Record, error) {
	if err := check(ctx, year); err != nil {
		return nil, err
	}
	return s.holidays(ctx, year), nil
}

// holidays reads a materialized year, falling back to the engine cache when
// the store is absent, fails, holds no rows or holds a row it cannot decode.
func (s *holidayService) holidays(ctx context.Context, year int) []holiday.Record {
	if s.store == nil {
		return s.years.Get(year)
	}
	rows, err := s.store.ListByYear(ctx, year)
	if err != nil {
		logger.L().Warn().Int("year", year).Err(err).Msg("holiday store read failed; computing year")
		return s.years.Get(year)
	}
	if len(rows) == 0 {
		return s.years.Get(year)
	}
	out := make([]holiday.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := models.ToRecord(row)
		if err != nil {
			logger.L().Warn().Int("year", year).Err(err).Msg("invalid stored holiday; computing year")
			return s.years.Get(year)
		}
		out = append(out, rec)
	}
	return out
}

func (s *holidayService) MonthHolidays(ctx context.Context, year int, month time.Month) ([]holiday.Record, error) {
	if err := check(ctx, year); err != nil {
		return nil, err
	}
	return holiday.ForYearMonth(year, month)
}

func (s *holidayService) Dates(ctx context.Context, year int) ([]holiday.Date, error) {
	recs, err := s.Holidays(ctx, year)
	if err != nil {
		return nil, err
	}
	out := make([]holiday.Date, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Date)
	}
	return out, nil
}

func (s *holidayService) MonthDates(ctx context.Context, year int, month time.Month) ([]holiday.Date, error) {
	if err := check(ctx, year); err != nil {
		return nil, err
	}
	return holiday.DatesOnlyMonth(year, month)
}

func (s *holidayService) DayNumbers(ctx context.Context, year int, month time.Month) ([]int, error) {
	if err := check(ctx, year); err != nil {
		return nil, err
	}
	return holiday.DayNumbersOnly(year, month)
}

func (s *holidayService) Rules(ctx context.Context, year int) ([]holiday.Evaluation, error) {
	if err := check(ctx, year); err != nil {
		return nil, err
	}
	return holiday.ListRules(year), nil
}

func (s *holidayService) MonthRules(ctx context.Context, year int, month time.Month) ([]holiday.Evaluation, error) {
	if err := check(ctx, year); err != nil {
		return nil, err
	}
	return holiday.ListRulesMonth(year, month)
}

func (s *holidayService) Bridges(ctx context.Context, year int) ([]holiday.Date, error) {
	if err := check(ctx, year); err != nil {
		return nil, err
	}
	return holiday.BridgeHolidays(year), nil
}

func (s *holidayService) DayInfo(ctx context.Context, d holiday.Date, locale holiday.Locale) (models.DayInfo, error) {
	if err := check(ctx, d.Year); err != nil {
		return models.DayInfo{}, err
	}
	info := models.DayInfo{
		Date:          d,
		Weekday:       holiday.WeekdayName(d, locale),
		IsBusinessDay: s.calendar.IsBusinessDay(d),
	}
	for _, r := range s.holidays(ctx, d.Year) {
		if r.Date == d {
			info.IsHoliday = true
			info.Description = r.Description
			info.Category = r.Category.String()
			break
		}
	}
	return info, nil
}

func (s *holidayService) NextBusinessDay(ctx context.Context, d holiday.Date) (holiday.Date, error) {
	if err := check(ctx, d.Year); err != nil {
		return holiday.Date{}, err
	}
	return s.calendar.NextBusinessDay(d), nil
}

func (s *holidayService) PreviousBusinessDay(ctx context.Context, d holiday.Date) (holiday.Date, error) {
	if err := check(ctx, d.Year); err != nil {
		return holiday.Date{}, err
	}
	return s.calendar.PreviousBusinessDay(d), nil
}

// maxBusinessDayOffset keeps AddBusinessDays within a few decades.
const maxBusinessDayOffset = 10000

func (s *holidayService) AddBusinessDays(ctx context.Context, d holiday.Date, n int) (holiday.Date, error) {
	if err := check(ctx, d.Year); err != nil {
		return holiday.Date{}, err
	}
	if n > maxBusinessDayOffset || n < -maxBusinessDayOffset {
		return holiday.Date{}, fmt.Errorf("%w: offset %d out of range", holiday.ErrInvalidArgument, n)
	}
	return s.calendar.AddBusinessDays(d, n), nil
}

func check(ctx context.Context, year int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d out of range [%d, %d]", holiday.ErrInvalidArgument, year, MinYear, MaxYear)
	}
	return nil
}
