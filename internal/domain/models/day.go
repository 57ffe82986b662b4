package models

import "github.com/guttosm/shukujitsu/internal/holiday"

// DayInfo describes a single calendar day.
//
// Fields:
//   - Date: the day being described.
//   - Weekday: weekday name in the requested locale.
//   - IsHoliday: whether the day is a statutory, substitute or bridge holiday.
//   - Description: holiday name, empty when IsHoliday is false.
//   - Category: holiday category, empty when IsHoliday is false.
//   - IsBusinessDay: neither a weekend nor a holiday.
type DayInfo struct {
	Date          holiday.Date
	Weekday       string
	IsHoliday     bool
	Description   string
	Category      string
	IsBusinessDay bool
}
