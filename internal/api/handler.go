package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shukujitsu/internal/domain/dto"
	"github.com/guttosm/shukujitsu/internal/holiday"
	"github.com/guttosm/shukujitsu/internal/middleware"
	"github.com/guttosm/shukujitsu/internal/service"
)

// Handler provides HTTP handlers for the holiday endpoints.
//
// Responsibilities:
//   - Parse and validate path and query parameters
//   - Delegate to the HolidayService
//   - Translate results into response DTOs
//
// Service errors are attached with c.Error and rendered by middleware.ErrorHandler.
type Handler struct {
	svc service.HolidayService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.HolidayService) *Handler {
	return &Handler{svc: svc}
}

// ListHolidays godoc
// @Summary      List holidays of a year
// @Description  Statutory, substitute and bridge holidays ordered by date
// @Tags         holidays
// @Produce      json
// @Param        year    path      int     true   "Gregorian year" example(2026)
// @Param        locale  query     string  false  "Weekday names: native or en" example(en)
// @Success      200     {object}  dto.HolidaysResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/holidays/{year} [get]
func (h *Handler) ListHolidays(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	locale, ok := localeQuery(c)
	if !ok {
		return
	}

	recs, err := h.svc.Holidays(c.Request.Context(), year)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHolidaysResponse(year, 0, recs, locale))
}

// ListMonthHolidays godoc
// @Summary      List holidays of a month
// @Description  Holidays whose rule belongs to the month; September includes the bridge holiday
// @Tags         holidays
// @Produce      json
// @Param        year    path      int     true   "Gregorian year" example(2026)
// @Param        month   path      int     true   "Month 1-12" example(9)
// @Param        locale  query     string  false  "Weekday names: native or en" example(en)
// @Success      200     {object}  dto.HolidaysResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/holidays/{year}/{month} [get]
func (h *Handler) ListMonthHolidays(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}
	locale, ok := localeQuery(c)
	if !ok {
		return
	}

	recs, err := h.svc.MonthHolidays(c.Request.Context(), year, month)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHolidaysResponse(year, int(month), recs, locale))
}

// ListDayNumbers godoc
// @Summary      Holiday day numbers of a month
// @Tags         holidays
// @Produce      json
// @Param        year   path      int  true  "Gregorian year" example(2026)
// @Param        month  path      int  true  "Month 1-12" example(5)
// @Success      200    {object}  dto.DaysResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/v1/holidays/{year}/{month}/days [get]
func (h *Handler) ListDayNumbers(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	days, err := h.svc.DayNumbers(c.Request.Context(), year, month)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.DaysResponse{Year: year, Month: int(month), Days: days})
}

// ListDates godoc
// @Summary      Holiday dates of a year or month
// @Tags         holidays
// @Produce      json
// @Param        year   path      int  true   "Gregorian year" example(2026)
// @Param        month  query     int  false  "Month 1-12" example(5)
// @Success      200    {object}  dto.DatesResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/v1/dates/{year} [get]
func (h *Handler) ListDates(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	month, hasMonth, ok := monthQuery(c)
	if !ok {
		return
	}

	var (
		dates []holiday.Date
		err   error
	)
	if hasMonth {
		dates, err = h.svc.MonthDates(c.Request.Context(), year, month)
	} else {
		dates, err = h.svc.Dates(c.Request.Context(), year)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDatesResponse(year, int(month), dates))
}

// ListRules godoc
// @Summary      Evaluate holiday rules
// @Description  One entry per rule with its date and substitute holiday, if any
// @Tags         rules
// @Produce      json
// @Param        year   path      int  true   "Gregorian year" example(2026)
// @Param        month  query     int  false  "Month 1-12" example(5)
// @Success      200    {object}  dto.RulesResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/v1/rules/{year} [get]
func (h *Handler) ListRules(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	month, hasMonth, ok := monthQuery(c)
	if !ok {
		return
	}

	var (
		evs []holiday.Evaluation
		err error
	)
	if hasMonth {
		evs, err = h.svc.MonthRules(c.Request.Context(), year, month)
	} else {
		evs, err = h.svc.Rules(c.Request.Context(), year)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRulesResponse(year, int(month), evs))
}

// ListBridges godoc
// @Summary      Bridge holidays of a year
// @Tags         holidays
// @Produce      json
// @Param        year  path      int  true  "Gregorian year" example(2026)
// @Success      200   {object}  dto.DatesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/bridge/{year} [get]
func (h *Handler) ListBridges(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	dates, err := h.svc.Bridges(c.Request.Context(), year)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDatesResponse(year, 0, dates))
}

// GetDay godoc
// @Summary      Describe a date
// @Description  Weekday, holiday status and business-day status of a date
// @Tags         days
// @Produce      json
// @Param        date    path      string  true   "Date in YYYY-MM-DD" example(2026-01-01)
// @Param        locale  query     string  false  "Weekday names: native or en" example(native)
// @Success      200     {object}  dto.DayInfoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/v1/date/{date} [get]
func (h *Handler) GetDay(c *gin.Context) {
	d, ok := dateValue(c, c.Param("date"))
	if !ok {
		return
	}
	locale, ok := localeQuery(c)
	if !ok {
		return
	}

	info, err := h.svc.DayInfo(c.Request.Context(), d, locale)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDayInfoResponse(info))
}

// NextBusinessDay godoc
// @Summary      Next business day on or after a date
// @Tags         business-days
// @Produce      json
// @Param        date  query     string  true  "Date in YYYY-MM-DD" example(2026-09-19)
// @Success      200   {object}  dto.BusinessDayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-days/next [get]
func (h *Handler) NextBusinessDay(c *gin.Context) {
	d, ok := dateValue(c, c.Query("date"))
	if !ok {
		return
	}

	out, err := h.svc.NextBusinessDay(c.Request.Context(), d)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessDayResponse{From: d.String(), Date: out.String()})
}

// PreviousBusinessDay godoc
// @Summary      Previous business day on or before a date
// @Tags         business-days
// @Produce      json
// @Param        date  query     string  true  "Date in YYYY-MM-DD" example(2026-05-06)
// @Success      200   {object}  dto.BusinessDayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-days/previous [get]
func (h *Handler) PreviousBusinessDay(c *gin.Context) {
	d, ok := dateValue(c, c.Query("date"))
	if !ok {
		return
	}

	out, err := h.svc.PreviousBusinessDay(c.Request.Context(), d)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessDayResponse{From: d.String(), Date: out.String()})
}

// AddBusinessDays godoc
// @Summary      Move a number of business days from a date
// @Tags         business-days
// @Produce      json
// @Param        date  query     string  true  "Date in YYYY-MM-DD" example(2026-09-18)
// @Param        n     query     int     true  "Business days to move, negative goes back" example(1)
// @Success      200   {object}  dto.BusinessDayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-days/add [get]
func (h *Handler) AddBusinessDays(c *gin.Context) {
	d, ok := dateValue(c, c.Query("date"))
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(c.Query("n")))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "n must be an integer", err)
		return
	}

	out, err := h.svc.AddBusinessDays(c.Request.Context(), d, n)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessDayResponse{From: d.String(), Offset: n, Date: out.String()})
}

// ─── parameter helpers ───────────────────────────

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "year must be an integer", err)
		return 0, false
	}
	return year, true
}

func yearMonthParams(c *gin.Context) (int, time.Month, bool) {
	year, ok := yearParam(c)
	if !ok {
		return 0, 0, false
	}
	m, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "month must be an integer", err)
		return 0, 0, false
	}
	return year, time.Month(m), true
}

// monthQuery reads the optional ?month= filter.
func monthQuery(c *gin.Context) (time.Month, bool, bool) {
	s, present := c.GetQuery("month")
	if !present {
		return 0, false, true
	}
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "month must be an integer", err)
		return 0, false, false
	}
	return time.Month(m), true, true
}

func localeQuery(c *gin.Context) (holiday.Locale, bool) {
	s := strings.ToLower(strings.TrimSpace(c.Query("locale")))
	locale, ok := holiday.ParseLocale(s)
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "locale must be native or en", fmt.Errorf("unknown locale %q", s))
		return 0, false
	}
	return locale, true
}

func dateValue(c *gin.Context, s string) (holiday.Date, bool) {
	d, err := holiday.ParseDate(strings.TrimSpace(s))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", err)
		return holiday.Date{}, false
	}
	return d, true
}
