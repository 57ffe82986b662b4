package holiday

import "time"

// RestDay is the weekday whose coincidence with a holiday triggers a
// substitute holiday.
const RestDay = time.Sunday

const (
	substitutePrefix = "振替休日"
	bridgeName       = "国民の休日"
)

// Substitute returns the substitute holiday owed for kind k whose base date
// is base, if base falls on the rest day.
//
// The substitute is the following calendar day, without checking whether
// that day is already a holiday. Constitution Memorial Day and Greenery Day
// are the exceptions: their substitute is May 6, the day after Children's Day.
func Substitute(k Kind, base Date) (Date, bool) {
	if base.Weekday() != RestDay {
		return Date{}, false
	}
	switch k {
	case ConstitutionMemorial, GreeneryDay:
		return Date{Year: base.Year, Month: time.May, Day: 6}, true
	}
	return base.AddDays(1), true
}

// SubstituteDescription is the description recorded for the substitute of
// a holiday named name.
func SubstituteDescription(name string) string {
	return substitutePrefix + "（" + name + "）"
}
