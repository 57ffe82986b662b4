// Package holiday computes Japanese national holidays (国民の祝日) from rules.
//
// Every statutory holiday is a pure rule of the year: a fixed date, the nth
// Monday of a month, or the equinox approximation. On top of the rules two
// derived holidays are produced:
//
//   - a substitute holiday (振替休日) the day after a holiday that falls on a
//     Sunday (May 6 for Constitution Memorial Day and Greenery Day);
//   - a bridge holiday (国民の休日) for a weekday enclosed between Respect for
//     the Aged Day and the Autumn Equinox.
//
// The rule set is the one in force from 2022. Years outside 1980-2150 are
// computed with the same formulas and are not rejected.
//
// Nothing is cached: every call recomputes from the rules, so all functions
// are safe for concurrent use.
//
//	for _, r := range holiday.ForYear(2026) {
//		fmt.Println(r.Date, r.Description)
//	}
package holiday
