package models

import (
	"fmt"
	"time"

	"github.com/guttosm/shukujitsu/internal/holiday"
)

// StoredHoliday represents a single row of the holidays table.
//
// Column order:
//  1. HolidayDate
//  2. Year
//  3. Month
//  4. Day
//  5. Kind (NULL for bridge holidays)
//  6. Category ("statutory", "substitute" or "bridge")
//  7. Description
//  8. Weekday (abbreviated English)
type StoredHoliday struct {
	HolidayDate time.Time
	Year        int
	Month       int
	Day         int
	Kind        string
	Category    string
	Description string
	Weekday     string
}

// FromRecord converts an engine record into its table row.
func FromRecord(r holiday.Record) StoredHoliday {
	row := StoredHoliday{
		HolidayDate: r.Date.Time(),
		Year:        r.Date.Year,
		Month:       int(r.Date.Month),
		Day:         r.Date.Day,
		Category:    r.Category.String(),
		Description: r.Description,
		Weekday:     holiday.WeekdayName(r.Date, holiday.LocaleAbbreviatedEnglish),
	}
	if r.Category != holiday.CategoryBridge {
		row.Kind = r.Kind.String()
	}
	return row
}

// ToRecord converts a table row back into an engine record. Rows with an
// empty kind map to holiday.NoKind.
func ToRecord(row StoredHoliday) (holiday.Record, error) {
	cat, ok := holiday.ParseCategory(row.Category)
	if !ok {
		return holiday.Record{}, fmt.Errorf("holiday %s: unknown category %q", row.HolidayDate.Format("2006-01-02"), row.Category)
	}
	kind := holiday.NoKind
	if row.Kind != "" {
		if kind, ok = holiday.ParseKind(row.Kind); !ok {
			return holiday.Record{}, fmt.Errorf("holiday %s: unknown kind %q", row.HolidayDate.Format("2006-01-02"), row.Kind)
		}
	}
	return holiday.Record{
		Date:        holiday.NewDate(row.Year, time.Month(row.Month), row.Day),
		Description: row.Description,
		Category:    cat,
		Kind:        kind,
	}, nil
}
