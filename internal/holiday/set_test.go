package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForYear_2026(t *testing.T) {
	got := ForYear(2026)

	want := []struct {
		date string
		desc string
	}{
		{"2026-01-01", "元旦"},
		{"2026-01-12", "成人の日"},
		{"2026-02-11", "建国記念日"},
		{"2026-02-23", "天皇誕生日"},
		{"2026-03-20", "春分の日"},
		{"2026-04-29", "昭和の日"},
		{"2026-05-03", "憲法記念日"},
		{"2026-05-04", "みどりの日"},
		{"2026-05-05", "こどもの日"},
		{"2026-05-06", "振替休日（憲法記念日）"},
		{"2026-07-20", "海の日"},
		{"2026-08-11", "山の日"},
		{"2026-09-21", "敬老の日"},
		{"2026-09-22", "国民の休日"},
		{"2026-09-23", "秋分の日"},
		{"2026-10-12", "スポーツの日"},
		{"2026-11-03", "文化の日"},
		{"2026-11-23", "勤労感謝の日"},
	}
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.date, got[i].Date.String(), "record %d", i)
		assert.Equal(t, w.desc, got[i].Description, "record %d", i)
	}
}

func TestForYear_2025Substitutes(t *testing.T) {
	subs := map[string]string{}
	for _, r := range ForYear(2025) {
		if r.Category == CategorySubstitute {
			subs[r.Date.String()] = r.Description
		}
	}
	assert.Equal(t, map[string]string{
		"2025-02-24": "振替休日（天皇誕生日）",
		"2025-05-06": "振替休日（みどりの日）",
		"2025-11-24": "振替休日（勤労感謝の日）",
	}, subs)
}

func TestScenario_EmperorBirthdaySubstitute(t *testing.T) {
	assert.True(t, IsHoliday(NewDate(2025, time.February, 23)))
	assert.True(t, IsHoliday(NewDate(2025, time.February, 24)))
	desc, ok := Describe(NewDate(2025, time.February, 24))
	require.True(t, ok)
	assert.Equal(t, SubstituteDescription(EmperorBirthday.Name()), desc)
	assert.False(t, IsHoliday(NewDate(2025, time.February, 25)))
}

func TestScenario_BridgeHoliday(t *testing.T) {
	d := NewDate(2026, time.September, 22)
	assert.True(t, IsHoliday(d))
	desc, ok := Describe(d)
	require.True(t, ok)
	assert.Equal(t, BridgeDescription, desc)

	rec, ok := Lookup(d)
	require.True(t, ok)
	assert.Equal(t, CategoryBridge, rec.Category)
}

func TestScenario_InvalidMonth(t *testing.T) {
	for _, m := range []time.Month{0, 13, -1} {
		_, err := ForYearMonth(2026, m)
		assert.ErrorIs(t, err, ErrInvalidArgument, "month %d", m)
		_, err = DayNumbersOnly(2026, m)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = DatesOnlyMonth(2026, m)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = ListRulesMonth(2026, m)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestScenario_DatesOnlyUnique(t *testing.T) {
	dates := DatesOnly(2026)
	seen := map[Date]bool{}
	for _, d := range dates {
		assert.False(t, seen[d], "duplicate %s", d)
		seen[d] = true
	}
	assert.Len(t, dates, 18)
}

func TestDescribe_NotHoliday(t *testing.T) {
	_, ok := Describe(NewDate(2026, time.June, 15))
	assert.False(t, ok)
	assert.False(t, IsHoliday(NewDate(2026, time.December, 25)))
}

func TestForYearMonth(t *testing.T) {
	may, err := ForYearMonth(2026, time.May)
	require.NoError(t, err)
	assert.Equal(t, []Date{
		NewDate(2026, time.May, 3),
		NewDate(2026, time.May, 4),
		NewDate(2026, time.May, 5),
		NewDate(2026, time.May, 6),
	}, dates(may))

	june, err := ForYearMonth(2026, time.June)
	require.NoError(t, err)
	assert.Empty(t, june)

	days, err := DayNumbersOnly(2026, time.September)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 22, 23}, days)
}

func TestChildrensDaySubstitute(t *testing.T) {
	// 2024-05-05 is a Sunday: the generic next-day rule applies
	desc, ok := Describe(NewDate(2024, time.May, 6))
	require.True(t, ok)
	assert.Equal(t, "振替休日（こどもの日）", desc)
}

func TestNewYearSubstitute(t *testing.T) {
	// 2023-01-01 is a Sunday
	desc, ok := Describe(NewDate(2023, time.January, 2))
	require.True(t, ok)
	assert.Equal(t, "振替休日（元旦）", desc)
}

func TestSubstitute_MayOverride(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		base Date
		want Date
	}{
		{"constitution on sunday", ConstitutionMemorial, NewDate(2026, time.May, 3), NewDate(2026, time.May, 6)},
		{"greenery on sunday", GreeneryDay, NewDate(2025, time.May, 4), NewDate(2025, time.May, 6)},
		{"children on sunday", ChildrensDay, NewDate(2024, time.May, 5), NewDate(2024, time.May, 6)},
		{"generic next day", EmperorBirthday, NewDate(2025, time.February, 23), NewDate(2025, time.February, 24)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Substitute(tc.kind, tc.base)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := Substitute(NewYear, NewDate(2026, time.January, 1))
	assert.False(t, ok, "Thursday must not produce a substitute")
}

func TestListRules(t *testing.T) {
	evs := ListRules(2026)
	require.Len(t, evs, len(Kinds()))
	for i, ev := range evs {
		assert.Equal(t, Kind(i), ev.Kind)
		if ev.Kind == ConstitutionMemorial {
			require.True(t, ev.HasSubstitute)
			assert.Equal(t, NewDate(2026, time.May, 6), *ev.Substitute)
			continue
		}
		assert.False(t, ev.HasSubstitute, ev.Kind.String())
		assert.Nil(t, ev.Substitute)
	}

	sep, err := ListRulesMonth(2026, time.September)
	require.NoError(t, err)
	require.Len(t, sep, 2)
	assert.Equal(t, RespectForAge, sep[0].Kind)
	assert.Equal(t, AutumnEquinox, sep[1].Kind)
}

func TestBridgeHolidays(t *testing.T) {
	cases := []struct {
		year int
		want []Date
	}{
		{2026, []Date{NewDate(2026, time.September, 22)}},
		{2032, []Date{NewDate(2032, time.September, 21)}},
		{2025, nil},
		{2024, nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BridgeHolidays(tc.year), "year %d", tc.year)
	}
}

func TestProperties(t *testing.T) {
	for year := 1980; year <= 2150; year++ {
		all := ForYear(year)

		// determinism
		require.Equal(t, all, ForYear(year), "year %d", year)

		// strict ordering
		for i := 1; i < len(all); i++ {
			require.True(t, all[i-1].Date.Before(all[i].Date), "year %d: %s !< %s", year, all[i-1].Date, all[i].Date)
		}

		byDate := map[Date]Record{}
		for _, r := range all {
			byDate[r.Date] = r
		}

		// substitute correctness
		for _, k := range Kinds() {
			base := baseDate(k, year)
			if base.Weekday() != RestDay {
				continue
			}
			want := base.AddDays(1)
			if k == ConstitutionMemorial || k == GreeneryDay {
				want = Date{Year: year, Month: time.May, Day: 6}
			}
			r, ok := byDate[want]
			require.True(t, ok, "year %d: missing substitute of %s on %s", year, k, want)
			require.Contains(t, r.Description, substitutePrefix)
		}

		// bridge containment
		respect := baseDate(RespectForAge, year)
		autumn := baseDate(AutumnEquinox, year)
		for _, b := range BridgeHolidays(year) {
			require.Equal(t, time.September, b.Month)
			require.True(t, respect.Before(b) && b.Before(autumn), "year %d bridge %s", year, b)
			require.Equal(t, autumn, b.AddDays(1))
			require.True(t, IsHoliday(b.AddDays(-1)))
		}

		// month filter consistency
		for m := time.January; m <= time.December; m++ {
			month, err := ForYearMonth(year, m)
			require.NoError(t, err)
			var filtered []Record
			for _, r := range all {
				if r.Date.Month == m {
					filtered = append(filtered, r)
				}
			}
			if len(filtered) == 0 {
				require.Empty(t, month, "year %d month %d", year, m)
				continue
			}
			require.Equal(t, filtered, month, "year %d month %d", year, m)
		}
	}
}

func TestYearWrapper(t *testing.T) {
	y := Year(2026)
	assert.Equal(t, ForYear(2026), y.Holidays())
	assert.Equal(t, DatesOnly(2026), y.Dates())
	assert.Equal(t, BridgeHolidays(2026), y.Bridges())
	assert.Equal(t, ListRules(2026), y.Rules())

	d, err := y.Date(SportsDay)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", d.String())

	_, err = y.Month(13)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	days, err := y.DayNumbers(time.May)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6}, days)

	jst := time.FixedZone("Asia/Tokyo", 9*60*60)
	now := time.Date(2025, time.December, 31, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, Year(2026), CurrentYear(now, jst))
	assert.Equal(t, Year(2025), CurrentYear(now, nil))
}
