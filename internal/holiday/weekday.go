package holiday

import "time"

// NthWeekday returns the day of month of the nth occurrence of weekday in
// the given month (n=2, time.Monday is the second Monday).
//
// n is not range checked; a 5th occurrence that does not exist runs past the
// end of the month.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()

	day := int(weekday-first) + 1
	if first > weekday {
		day += 7
	}
	return day + 7*(n-1)
}

// Locale selects the rendering of weekday names.
type Locale int

const (
	// LocaleNative renders the single kanji used on Japanese calendars (月, 火, ...).
	LocaleNative Locale = iota
	// LocaleAbbreviatedEnglish renders three-letter English names (Mon, Tue, ...).
	LocaleAbbreviatedEnglish
)

// indexed by time.Weekday (Sunday first)
var (
	weekdaysNative  = [7]string{"日", "月", "火", "水", "木", "金", "土"}
	weekdaysEnglish = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// ParseLocale maps "native"/"ja" and "en"/"english" to a Locale.
func ParseLocale(s string) (Locale, bool) {
	switch s {
	case "", "native", "ja":
		return LocaleNative, true
	case "en", "english", "abbreviated-english":
		return LocaleAbbreviatedEnglish, true
	}
	return LocaleNative, false
}

// WeekdayName returns the weekday of d rendered for the locale.
// Unknown locales fall back to the native rendering.
func WeekdayName(d Date, locale Locale) string {
	wd := d.Weekday()
	if locale == LocaleAbbreviatedEnglish {
		return weekdaysEnglish[wd]
	}
	return weekdaysNative[wd]
}
