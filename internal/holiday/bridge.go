package holiday

import "time"

// BridgeDescription is the description of a bridge ("citizens'") holiday.
const BridgeDescription = bridgeName

// BridgeHolidays returns the weekdays of year enclosed between two
// statutory holidays. Under the current rule set this can only happen in
// September, between Respect for the Aged Day (or its substitute) and the
// Autumn Equinox, so the result holds zero or one date.
func BridgeHolidays(year int) []Date {
	respect := baseDate(RespectForAge, year)
	autumn := baseDate(AutumnEquinox, year)

	if autumn.Day-respect.Day == 2 {
		return []Date{{Year: year, Month: time.September, Day: respect.Day + 1}}
	}
	if sub, ok := Substitute(RespectForAge, respect); ok && autumn.Day-sub.Day == 2 {
		return []Date{{Year: year, Month: time.September, Day: sub.Day + 1}}
	}
	return nil
}
