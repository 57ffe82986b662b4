package holiday

import (
	"fmt"
	"time"
)

// Kind identifies one statutory holiday of the current (2022-onward) rule set.
type Kind int

// Kinds are declared in catalog order, which is also the evaluation order
// used when records are merged by date.
const (
	NewYear Kind = iota
	ComingOfAge
	NationalFoundation
	EmperorBirthday
	SpringEquinox
	ShowaDay
	ConstitutionMemorial
	GreeneryDay
	ChildrensDay
	MarineDay
	MountainDay
	RespectForAge
	AutumnEquinox
	SportsDay
	CultureDay
	LaborThanksgiving

	kindCount
)

// NoKind marks records that no rule produced directly, such as the bridge holiday.
const NoKind Kind = -1

var kindInfo = [kindCount]struct {
	id    string
	name  string
	month time.Month
}{
	NewYear:              {"new_year", "元旦", time.January},
	ComingOfAge:          {"coming_of_age", "成人の日", time.January},
	NationalFoundation:   {"national_foundation", "建国記念日", time.February},
	EmperorBirthday:      {"emperor_birthday", "天皇誕生日", time.February},
	SpringEquinox:        {"spring_equinox", "春分の日", time.March},
	ShowaDay:             {"showa_day", "昭和の日", time.April},
	ConstitutionMemorial: {"constitution_memorial", "憲法記念日", time.May},
	GreeneryDay:          {"greenery_day", "みどりの日", time.May},
	ChildrensDay:         {"childrens_day", "こどもの日", time.May},
	MarineDay:            {"marine_day", "海の日", time.July},
	MountainDay:          {"mountain_day", "山の日", time.August},
	RespectForAge:        {"respect_for_age", "敬老の日", time.September},
	AutumnEquinox:        {"autumn_equinox", "秋分の日", time.September},
	SportsDay:            {"sports_day", "スポーツの日", time.October},
	CultureDay:           {"culture_day", "文化の日", time.November},
	LaborThanksgiving:    {"labor_thanksgiving", "勤労感謝の日", time.November},
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// KindsIn returns the kinds whose base date always falls in month.
func KindsIn(month time.Month) []Kind {
	var out []Kind
	for k := Kind(0); k < kindCount; k++ {
		if kindInfo[k].month == month {
			out = append(out, k)
		}
	}
	return out
}

func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// String returns a stable ASCII identifier such as "respect_for_age".
func (k Kind) String() string {
	if k == NoKind {
		return "none"
	}
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindInfo[k].id
}

// Name returns the statutory Japanese name of the holiday.
func (k Kind) Name() string {
	if !k.Valid() {
		return ""
	}
	return kindInfo[k].name
}

// Month is the month the holiday's base date falls in.
func (k Kind) Month() time.Month {
	if !k.Valid() {
		return 0
	}
	return kindInfo[k].month
}

// ParseKind resolves an identifier produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kindInfo[k].id == s {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unknown holiday kind %d", ErrInvalidArgument, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("%w: unknown holiday kind %q", ErrInvalidArgument, string(b))
	}
	*k = parsed
	return nil
}
