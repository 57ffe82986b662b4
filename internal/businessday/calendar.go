// Package businessday answers working-day questions (next/previous business
// day, business days in a range) on top of the holiday engine.
//
// Every holiday kind, its substitute and the bridge holiday are registered in
// a rickar/cal business calendar as computed holidays, so weekends and the
// full Japanese holiday set are both non-working days.
package businessday

import (
	"time"

	"github.com/rickar/cal/v2"

	"github.com/guttosm/shukujitsu/internal/holiday"
)

// maxScan bounds the day-by-day searches; no real calendar has a run of
// more than a few consecutive non-working days.
const maxScan = 366

// Calendar is a Japanese business calendar. Saturdays, Sundays and every
// holiday produced by the holiday package are non-working days.
// It is safe for concurrent use once built.
type Calendar struct {
	bc *cal.BusinessCalendar
}

// New builds a Calendar with the default Monday-Friday work week.
func New() *Calendar {
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(calHolidays()...)
	return &Calendar{bc: bc}
}

// calHolidays converts the holiday engine into rickar/cal holidays. A
// derived holiday that does not occur in a year returns the zero time,
// which cal treats as "no occurrence".
func calHolidays() []*cal.Holiday {
	var out []*cal.Holiday
	for _, k := range holiday.Kinds() {
		out = append(out,
			&cal.Holiday{
				Name: k.Name(),
				Type: cal.ObservancePublic,
				Func: func(_ *cal.Holiday, year int) time.Time {
					d, _ := holiday.ByKind(k, year)
					return d.Time()
				},
			},
			&cal.Holiday{
				Name: holiday.SubstituteDescription(k.Name()),
				Type: cal.ObservancePublic,
				Func: func(_ *cal.Holiday, year int) time.Time {
					d, _ := holiday.ByKind(k, year)
					sub, ok := holiday.Substitute(k, d)
					if !ok {
						return time.Time{}
					}
					return sub.Time()
				},
			},
		)
	}
	out = append(out, &cal.Holiday{
		Name: holiday.BridgeDescription,
		Type: cal.ObservancePublic,
		Func: func(_ *cal.Holiday, year int) time.Time {
			bridges := holiday.BridgeHolidays(year)
			if len(bridges) == 0 {
				return time.Time{}
			}
			return bridges[0].Time()
		},
	})
	return out
}

// IsHoliday reports whether d is a holiday and returns its name.
func (c *Calendar) IsHoliday(d holiday.Date) (bool, string) {
	actual, observed, h := c.bc.IsHoliday(d.Time())
	if (!actual && !observed) || h == nil {
		return false, ""
	}
	return true, h.Name
}

// IsBusinessDay reports whether d is neither a weekend day nor a holiday.
func (c *Calendar) IsBusinessDay(d holiday.Date) bool {
	return c.bc.IsWorkday(d.Time())
}

// NextBusinessDay returns d if it is a business day, otherwise the first
// business day after it.
func (c *Calendar) NextBusinessDay(d holiday.Date) holiday.Date {
	return c.scan(d, 1)
}

// PreviousBusinessDay returns d if it is a business day, otherwise the last
// business day before it.
func (c *Calendar) PreviousBusinessDay(d holiday.Date) holiday.Date {
	return c.scan(d, -1)
}

func (c *Calendar) scan(d holiday.Date, step int) holiday.Date {
	cur := d
	for i := 0; i < maxScan; i++ {
		if c.IsBusinessDay(cur) {
			return cur
		}
		cur = cur.AddDays(step)
	}
	return holiday.Date{}
}

// AddBusinessDays moves n business days from d (backwards when n < 0).
// d itself is never counted; n == 0 returns d unchanged.
func (c *Calendar) AddBusinessDays(d holiday.Date, n int) holiday.Date {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	cur := d
	for n > 0 {
		cur = cur.AddDays(step)
		if c.IsBusinessDay(cur) {
			n--
		}
	}
	return cur
}

// BusinessDaysInRange counts business days in [from, to], both inclusive.
// It returns 0 when to is before from.
func (c *Calendar) BusinessDaysInRange(from, to holiday.Date) int {
	n := 0
	for cur := from; !cur.After(to); cur = cur.AddDays(1) {
		if c.IsBusinessDay(cur) {
			n++
		}
	}
	return n
}

// LastNBusinessDays returns the last n business days on or before from,
// most recent first.
func (c *Calendar) LastNBusinessDays(n int, from holiday.Date) []holiday.Date {
	if n < 1 {
		return nil
	}
	out := make([]holiday.Date, 0, n)
	d := from
	for len(out) < n {
		if c.IsBusinessDay(d) {
			out = append(out, d)
		}
		d = d.AddDays(-1)
	}
	return out
}
