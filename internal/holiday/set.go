package holiday

import (
	"sort"
	"time"
)

// Category tells how a record came to be a holiday.
type Category int

const (
	CategoryStatutory Category = iota
	CategorySubstitute
	CategoryBridge
)

func (c Category) String() string {
	switch c {
	case CategoryStatutory:
		return "statutory"
	case CategorySubstitute:
		return "substitute"
	case CategoryBridge:
		return "bridge"
	}
	return "unknown"
}

// ParseCategory resolves a name produced by Category.String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryStatutory; c <= CategoryBridge; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Record is one holiday date with its description. Two records with the
// same Date are duplicates whatever their descriptions.
//
// Kind is the originating rule; bridge records carry NoKind.
type Record struct {
	Date        Date
	Description string
	Category    Category
	Kind        Kind
}

// Evaluation is the outcome of one rule for one year.
type Evaluation struct {
	Kind          Kind
	Date          Date
	Description   string
	HasSubstitute bool
	Substitute    *Date
}

// Evaluate runs the rule of k for year together with the substitute policy.
func Evaluate(k Kind, year int) (Evaluation, error) {
	base, err := ByKind(k, year)
	if err != nil {
		return Evaluation{}, err
	}
	ev := Evaluation{Kind: k, Date: base, Description: k.Name()}
	if sub, ok := Substitute(k, base); ok {
		ev.HasSubstitute = true
		ev.Substitute = &sub
	}
	return ev, nil
}

// ListRules evaluates every rule for year in catalog order.
func ListRules(year int) []Evaluation {
	return evaluateAll(Kinds(), year)
}

// ListRulesMonth evaluates the rules whose base date falls in month.
func ListRulesMonth(year int, month time.Month) ([]Evaluation, error) {
	if err := validMonth(month); err != nil {
		return nil, err
	}
	return evaluateAll(KindsIn(month), year), nil
}

func evaluateAll(kinds []Kind, year int) []Evaluation {
	out := make([]Evaluation, 0, len(kinds))
	for _, k := range kinds {
		ev, _ := Evaluate(k, year) // kinds come from the catalog
		out = append(out, ev)
	}
	return out
}

// merger accumulates records keyed by date; the first record for a date wins.
type merger struct {
	byDate map[Date]Record
}

func newMerger() *merger {
	return &merger{byDate: make(map[Date]Record, 2*int(kindCount))}
}

func (m *merger) add(r Record) {
	if _, dup := m.byDate[r.Date]; dup {
		return
	}
	m.byDate[r.Date] = r
}

func (m *merger) addEvaluations(evs []Evaluation) {
	for _, ev := range evs {
		m.add(Record{Date: ev.Date, Description: ev.Description, Category: CategoryStatutory, Kind: ev.Kind})
		if ev.HasSubstitute {
			m.add(Record{
				Date:        *ev.Substitute,
				Description: SubstituteDescription(ev.Description),
				Category:    CategorySubstitute,
				Kind:        ev.Kind,
			})
		}
	}
}

func (m *merger) addBridges(year int) {
	for _, d := range BridgeHolidays(year) {
		m.add(Record{Date: d, Description: BridgeDescription, Category: CategoryBridge, Kind: NoKind})
	}
}

func (m *merger) sorted() []Record {
	out := make([]Record, 0, len(m.byDate))
	for _, r := range m.byDate {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ForYear returns every statutory, substitute and bridge holiday of year,
// ordered by date with no duplicate dates.
func ForYear(year int) []Record {
	m := newMerger()
	m.addEvaluations(ListRules(year))
	m.addBridges(year)
	return m.sorted()
}

// ForYearMonth is ForYear restricted to the rules whose base date falls in
// month. Bridge holidays are included only for September.
func ForYearMonth(year int, month time.Month) ([]Record, error) {
	evs, err := ListRulesMonth(year, month)
	if err != nil {
		return nil, err
	}
	m := newMerger()
	m.addEvaluations(evs)
	if month == time.September {
		m.addBridges(year)
	}
	return m.sorted(), nil
}

// Describe returns the description of d if it is a holiday.
func Describe(d Date) (string, bool) {
	r, ok := Lookup(d)
	return r.Description, ok
}

// Lookup returns the full record of d if it is a holiday.
func Lookup(d Date) (Record, bool) {
	for _, r := range ForYear(d.Year) {
		if r.Date == d {
			return r, true
		}
	}
	return Record{}, false
}

// IsHoliday reports whether d is a statutory, substitute or bridge holiday.
func IsHoliday(d Date) bool {
	_, ok := Lookup(d)
	return ok
}

// DatesOnly returns the holiday dates of year.
func DatesOnly(year int) []Date {
	return dates(ForYear(year))
}

// DatesOnlyMonth returns the holiday dates of year and month.
func DatesOnlyMonth(year int, month time.Month) ([]Date, error) {
	recs, err := ForYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	return dates(recs), nil
}

// DayNumbersOnly returns the days of month that are holidays.
func DayNumbersOnly(year int, month time.Month) ([]int, error) {
	recs, err := ForYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Date.Day)
	}
	return out, nil
}

func dates(recs []Record) []Date {
	out := make([]Date, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Date)
	}
	return out
}
