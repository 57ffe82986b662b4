package dto

import (
	"github.com/guttosm/shukujitsu/internal/domain/models"
	"github.com/guttosm/shukujitsu/internal/holiday"
)

// HolidayResponse is one holiday entry.
type HolidayResponse struct {
	Date        string `json:"date" example:"2026-09-22"`
	Weekday     string `json:"weekday" example:"Tue"`
	Description string `json:"description" example:"国民の休日"`
	Category    string `json:"category" example:"bridge"`
	Kind        string `json:"kind,omitempty" example:"respect_for_age"`
}

// HolidaysResponse is returned by the year and year/month listings.
type HolidaysResponse struct {
	Year     int               `json:"year" example:"2026"`
	Month    int               `json:"month,omitempty" example:"9"`
	Count    int               `json:"count" example:"18"`
	Holidays []HolidayResponse `json:"holidays"`
}

// DatesResponse carries bare holiday dates.
type DatesResponse struct {
	Year  int      `json:"year" example:"2026"`
	Month int      `json:"month,omitempty" example:"5"`
	Dates []string `json:"dates"`
}

// DaysResponse carries the day-of-month numbers of one month.
type DaysResponse struct {
	Year  int   `json:"year" example:"2026"`
	Month int   `json:"month" example:"5"`
	Days  []int `json:"days"`
}

// RuleResponse is the evaluation of one holiday rule for a year.
type RuleResponse struct {
	Kind          string  `json:"kind" example:"constitution_memorial"`
	Date          string  `json:"date" example:"2026-05-03"`
	Description   string  `json:"description" example:"憲法記念日"`
	HasSubstitute bool    `json:"has_substitute"`
	Substitute    *string `json:"substitute,omitempty" example:"2026-05-06"`
}

// RulesResponse lists rule evaluations.
type RulesResponse struct {
	Year  int            `json:"year" example:"2026"`
	Month int            `json:"month,omitempty" example:"5"`
	Rules []RuleResponse `json:"rules"`
}

// DayInfoResponse describes one calendar day.
type DayInfoResponse struct {
	Date          string `json:"date" example:"2026-01-01"`
	Weekday       string `json:"weekday" example:"木"`
	IsHoliday     bool   `json:"is_holiday"`
	Description   string `json:"description,omitempty" example:"元旦"`
	Category      string `json:"category,omitempty" example:"statutory"`
	IsBusinessDay bool   `json:"is_business_day"`
}

// BusinessDayResponse is returned by the business-day endpoints.
type BusinessDayResponse struct {
	From   string `json:"from" example:"2026-09-18"`
	Offset int    `json:"offset,omitempty" example:"1"`
	Date   string `json:"date" example:"2026-09-24"`
}

// NewHolidayResponse maps an engine record.
func NewHolidayResponse(r holiday.Record, locale holiday.Locale) HolidayResponse {
	resp := HolidayResponse{
		Date:        r.Date.String(),
		Weekday:     holiday.WeekdayName(r.Date, locale),
		Description: r.Description,
		Category:    r.Category.String(),
	}
	if r.Category != holiday.CategoryBridge {
		resp.Kind = r.Kind.String()
	}
	return resp
}

// NewHolidaysResponse maps a list of records; month is 0 for a whole year.
func NewHolidaysResponse(year, month int, recs []holiday.Record, locale holiday.Locale) HolidaysResponse {
	out := HolidaysResponse{Year: year, Month: month, Count: len(recs), Holidays: make([]HolidayResponse, 0, len(recs))}
	for _, r := range recs {
		out.Holidays = append(out.Holidays, NewHolidayResponse(r, locale))
	}
	return out
}

// NewDatesResponse maps a list of dates; month is 0 for a whole year.
func NewDatesResponse(year, month int, dates []holiday.Date) DatesResponse {
	out := DatesResponse{Year: year, Month: month, Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		out.Dates = append(out.Dates, d.String())
	}
	return out
}

// NewRulesResponse maps rule evaluations.
func NewRulesResponse(year, month int, evs []holiday.Evaluation) RulesResponse {
	out := RulesResponse{Year: year, Month: month, Rules: make([]RuleResponse, 0, len(evs))}
	for _, ev := range evs {
		r := RuleResponse{
			Kind:          ev.Kind.String(),
			Date:          ev.Date.String(),
			Description:   ev.Description,
			HasSubstitute: ev.HasSubstitute,
		}
		if ev.Substitute != nil {
			s := ev.Substitute.String()
			r.Substitute = &s
		}
		out.Rules = append(out.Rules, r)
	}
	return out
}

// NewDayInfoResponse maps a models.DayInfo.
func NewDayInfoResponse(info models.DayInfo) DayInfoResponse {
	return DayInfoResponse{
		Date:          info.Date.String(),
		Weekday:       info.Weekday,
		IsHoliday:     info.IsHoliday,
		Description:   info.Description,
		Category:      info.Category,
		IsBusinessDay: info.IsBusinessDay,
	}
}
