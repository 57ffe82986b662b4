package holiday

import "time"

// Year binds a calendar year to the package functions. It holds no state
// besides the year and is safe to copy and share.
type Year int

// CurrentYear returns the Year of now in loc (UTC when loc is nil).
func CurrentYear(now time.Time, loc *time.Location) Year {
	if loc == nil {
		loc = time.UTC
	}
	return Year(now.In(loc).Year())
}

func (y Year) Holidays() []Record { return ForYear(int(y)) }

func (y Year) Month(month time.Month) ([]Record, error) { return ForYearMonth(int(y), month) }

func (y Year) Dates() []Date { return DatesOnly(int(y)) }

func (y Year) MonthDates(month time.Month) ([]Date, error) { return DatesOnlyMonth(int(y), month) }

func (y Year) DayNumbers(month time.Month) ([]int, error) { return DayNumbersOnly(int(y), month) }

func (y Year) Rules() []Evaluation { return ListRules(int(y)) }

func (y Year) MonthRules(month time.Month) ([]Evaluation, error) {
	return ListRulesMonth(int(y), month)
}

func (y Year) Bridges() []Date { return BridgeHolidays(int(y)) }

// Date returns the base date of one holiday in this year.
func (y Year) Date(k Kind) (Date, error) { return ByKind(k, int(y)) }
