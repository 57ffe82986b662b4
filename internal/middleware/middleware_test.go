package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shukujitsu/internal/domain/dto"
	"github.com/guttosm/shukujitsu/internal/holiday"
)

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", assertErr{}, http.StatusInternalServerError},
		{"invalid argument", fmt.Errorf("%w: month 13", holiday.ErrInvalidArgument), http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", func(c *gin.Context) { _ = c.Error(tc.err) })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.want {
				t.Fatalf("code=%d want %d", w.Code, tc.want)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.ErrorDetails != tc.err.Error() {
				t.Fatalf("details=%q want %q", body.ErrorDetails, tc.err.Error())
			}
		})
	}
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(assertErr{})
		c.String(http.StatusTeapot, "already written")
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTeapot || w.Body.String() != "already written" {
		t.Fatalf("response overwritten: %d %q", w.Code, w.Body.String())
	}
}

func TestStatusFor_Wrapped(t *testing.T) {
	err := fmt.Errorf("service: %w", fmt.Errorf("%w: year 0", holiday.ErrInvalidArgument))
	if got := StatusFor(err); got != http.StatusBadRequest {
		t.Fatalf("StatusFor=%d", got)
	}
	if got := StatusFor(errors.New("x")); got != http.StatusInternalServerError {
		t.Fatalf("StatusFor=%d", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("secret detail") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.ErrorDetails != "" {
		t.Fatalf("panic value leaked: %q", body.ErrorDetails)
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "at limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RateLimiter(tc.lim))
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	old := window
	window = 200 * time.Millisecond
	t.Cleanup(func() { window = old })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(2))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	do := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Code
	}

	// burst of two, then one token every 100ms
	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		if code := do(); code != want {
			t.Fatalf("request %d: got %d want %d", i+1, code, want)
		}
	}
	time.Sleep(150 * time.Millisecond)
	if code := do(); code != http.StatusOK {
		t.Fatalf("after refill: %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request after one refill: %d", code)
	}
}

func TestRateLimiter_NoDoubleBurstAcrossWindowEdge(t *testing.T) {
	old := window
	window = 200 * time.Millisecond
	t.Cleanup(func() { window = old })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(2))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	accepted := 0
	do := func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code == http.StatusOK {
			accepted++
		}
	}

	do()
	time.Sleep(190 * time.Millisecond)
	do()
	time.Sleep(15 * time.Millisecond)
	do()
	do()
	if accepted > 3 {
		t.Fatalf("limit=2 per window accepted %d requests in ~205ms", accepted)
	}
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(60))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	var w *httptest.ResponseRecorder
	for i := 0; i < 61; i++ {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	}
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	// 60 per minute refills one token per second
	if got := w.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("Retry-After %q, want 1", got)
	}
}

func TestRetryAfter(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{time.Millisecond, "1"},
		{time.Second, "1"},
		{1500 * time.Millisecond, "2"},
		{30 * time.Second, "30"},
	}
	for _, tc := range cases {
		if got := retryAfter(tc.in); got != tc.want {
			t.Fatalf("retryAfter(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(time.Second))
	var hasDeadline bool
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !hasDeadline {
		t.Fatalf("expected request context deadline")
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}
