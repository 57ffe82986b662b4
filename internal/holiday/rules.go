package holiday

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned when a caller passes a month outside 1..12
// (or an unknown kind). It is raised before any computation.
var ErrInvalidArgument = errors.New("invalid argument")

// Rule computes the month and day of a holiday for a year. Rules are pure.
type Rule func(year int) (time.Month, int)

func fixed(month time.Month, day int) Rule {
	return func(int) (time.Month, int) { return month, day }
}

func floating(month time.Month, weekday time.Weekday, n int) Rule {
	return func(year int) (time.Month, int) {
		return month, NthWeekday(year, month, weekday, n)
	}
}

func computed(month time.Month, fn func(year int) int) Rule {
	return func(year int) (time.Month, int) { return month, fn(year) }
}

// rules is the static dispatch table from kind to its rule.
var rules = [kindCount]Rule{
	NewYear:              fixed(time.January, 1),
	ComingOfAge:          floating(time.January, time.Monday, 2),
	NationalFoundation:   fixed(time.February, 11),
	EmperorBirthday:      fixed(time.February, 23),
	SpringEquinox:        computed(time.March, SpringEquinoxDay),
	ShowaDay:             fixed(time.April, 29),
	ConstitutionMemorial: fixed(time.May, 3),
	GreeneryDay:          fixed(time.May, 4),
	ChildrensDay:         fixed(time.May, 5),
	MarineDay:            floating(time.July, time.Monday, 3),
	MountainDay:          fixed(time.August, 11),
	RespectForAge:        floating(time.September, time.Monday, 3),
	AutumnEquinox:        computed(time.September, AutumnEquinoxDay),
	SportsDay:            floating(time.October, time.Monday, 2),
	CultureDay:           fixed(time.November, 3),
	LaborThanksgiving:    fixed(time.November, 23),
}

// RuleFor returns the rule of a kind.
func RuleFor(k Kind) (Rule, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unknown holiday kind %d", ErrInvalidArgument, int(k))
	}
	return rules[k], nil
}

// ByKind returns the base date of one holiday in year.
func ByKind(k Kind, year int) (Date, error) {
	rule, err := RuleFor(k)
	if err != nil {
		return Date{}, err
	}
	month, day := rule(year)
	return Date{Year: year, Month: month, Day: day}, nil
}

// baseDate is ByKind for kinds already known to be valid.
func baseDate(k Kind, year int) Date {
	month, day := rules[k](year)
	return Date{Year: year, Month: month, Day: day}
}

func validMonth(month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d out of range 1..12", ErrInvalidArgument, int(month))
	}
	return nil
}
