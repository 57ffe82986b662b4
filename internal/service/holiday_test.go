package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/shukujitsu/internal/businessday"
	"github.com/guttosm/shukujitsu/internal/cache"
	"github.com/guttosm/shukujitsu/internal/domain/models"
	"github.com/guttosm/shukujitsu/internal/holiday"
)

func newTestService(t *testing.T) HolidayService {
	t.Helper()
	years, err := cache.NewYears(8)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	return NewHolidayService(years, businessday.New(), nil)
}

func TestHolidayService_Holidays(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	recs, err := svc.Holidays(ctx, 2026)
	if err != nil {
		t.Fatalf("Holidays err: %v", err)
	}
	if len(recs) != 18 {
		t.Fatalf("want 18 holidays in 2026, got %d", len(recs))
	}

	dates, err := svc.Dates(ctx, 2026)
	if err != nil || len(dates) != len(recs) {
		t.Fatalf("Dates: len=%d err=%v", len(dates), err)
	}
}

func TestHolidayService_MonthQueries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	recs, err := svc.MonthHolidays(ctx, 2026, time.September)
	if err != nil {
		t.Fatalf("MonthHolidays err: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 september holidays in 2026, got %d", len(recs))
	}

	days, err := svc.DayNumbers(ctx, 2026, time.May)
	if err != nil {
		t.Fatalf("DayNumbers err: %v", err)
	}
	want := []int{3, 4, 5, 6}
	if len(days) != len(want) {
		t.Fatalf("want %v got %v", want, days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("want %v got %v", want, days)
		}
	}

	if _, err := svc.MonthDates(ctx, 2026, 13); !errors.Is(err, holiday.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.MonthRules(ctx, 2026, 0); !errors.Is(err, holiday.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestHolidayService_RulesAndBridges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rules, err := svc.Rules(ctx, 2026)
	if err != nil || len(rules) != len(holiday.Kinds()) {
		t.Fatalf("Rules: len=%d err=%v", len(rules), err)
	}
	bridges, err := svc.Bridges(ctx, 2026)
	if err != nil || len(bridges) != 1 || bridges[0] != holiday.NewDate(2026, time.September, 22) {
		t.Fatalf("Bridges: %v err=%v", bridges, err)
	}
}

func TestHolidayService_DayInfo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name        string
		date        holiday.Date
		locale      holiday.Locale
		wantHoliday bool
		wantDesc    string
		wantWeekday string
		wantBiz     bool
	}{
		{"new year native", holiday.NewDate(2026, time.January, 1), holiday.LocaleNative, true, "元旦", "木", false},
		{"bridge english", holiday.NewDate(2026, time.September, 22), holiday.LocaleAbbreviatedEnglish, true, holiday.BridgeDescription, "Tue", false},
		{"plain day", holiday.NewDate(2026, time.June, 15), holiday.LocaleAbbreviatedEnglish, false, "", "Mon", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := svc.DayInfo(ctx, tc.date, tc.locale)
			if err != nil {
				t.Fatalf("DayInfo err: %v", err)
			}
			if info.IsHoliday != tc.wantHoliday || info.Description != tc.wantDesc || info.Weekday != tc.wantWeekday || info.IsBusinessDay != tc.wantBiz {
				t.Fatalf("unexpected info %+v", info)
			}
		})
	}
}

func TestHolidayService_BusinessDays(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	next, err := svc.NextBusinessDay(ctx, holiday.NewDate(2026, time.September, 19))
	if err != nil || next != holiday.NewDate(2026, time.September, 24) {
		t.Fatalf("NextBusinessDay: %s err=%v", next, err)
	}
	prev, err := svc.PreviousBusinessDay(ctx, holiday.NewDate(2026, time.May, 6))
	if err != nil || prev != holiday.NewDate(2026, time.May, 1) {
		t.Fatalf("PreviousBusinessDay: %s err=%v", prev, err)
	}
	added, err := svc.AddBusinessDays(ctx, holiday.NewDate(2026, time.September, 18), 1)
	if err != nil || added != holiday.NewDate(2026, time.September, 24) {
		t.Fatalf("AddBusinessDays: %s err=%v", added, err)
	}
	if _, err := svc.AddBusinessDays(ctx, holiday.NewDate(2026, time.September, 18), maxBusinessDayOffset+1); !errors.Is(err, holiday.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestHolidayService_Errors(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		ctx  func() context.Context
		year int
		want error
	}{
		{"year too small", context.Background, 0, holiday.ErrInvalidArgument},
		{"year too large", context.Background, 10000, holiday.ErrInvalidArgument},
		{"canceled", func() context.Context {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx
		}, 2026, context.Canceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Holidays(tc.ctx(), tc.year); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

type fakeStore struct {
	rows  []models.StoredHoliday
	err   error
	calls int
}

func (f *fakeStore) ListByYear(_ context.Context, year int) ([]models.StoredHoliday, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.StoredHoliday
	for _, r := range f.rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func newStoreService(t *testing.T, store HolidayStore) HolidayService {
	t.Helper()
	years, err := cache.NewYears(8)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	return NewHolidayService(years, businessday.New(), store)
}

func TestHolidayService_ServesFromStore(t *testing.T) {
	stored := models.FromRecord(holiday.ForYear(2026)[0])
	stored.Description = "元日"
	badKind := stored
	badKind.Kind = "tanabata"

	cases := []struct {
		name     string
		store    *fakeStore
		wantLen  int
		wantDesc string
	}{
		{"materialized year", &fakeStore{rows: []models.StoredHoliday{stored}}, 1, "元日"},
		{"year not materialized", &fakeStore{}, 18, "元旦"},
		{"store error", &fakeStore{err: errors.New("connection refused")}, 18, "元旦"},
		{"undecodable row", &fakeStore{rows: []models.StoredHoliday{badKind}}, 18, "元旦"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newStoreService(t, tc.store)
			recs, err := svc.Holidays(context.Background(), 2026)
			if err != nil {
				t.Fatalf("Holidays err: %v", err)
			}
			if len(recs) != tc.wantLen || recs[0].Description != tc.wantDesc {
				t.Fatalf("got %d records, first %+v", len(recs), recs[0])
			}
			if tc.store.calls != 1 {
				t.Fatalf("store called %d times", tc.store.calls)
			}
		})
	}
}

func TestHolidayService_DayInfoFromStore(t *testing.T) {
	stored := models.FromRecord(holiday.ForYear(2026)[0])
	stored.Description = "元日"
	svc := newStoreService(t, &fakeStore{rows: []models.StoredHoliday{stored}})

	info, err := svc.DayInfo(context.Background(), holiday.NewDate(2026, time.January, 1), holiday.LocaleNative)
	if err != nil {
		t.Fatalf("DayInfo err: %v", err)
	}
	if !info.IsHoliday || info.Description != "元日" || info.Category != "statutory" {
		t.Fatalf("unexpected info %+v", info)
	}
}
