package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/shukujitsu/internal/domain/dto"
)

// DefaultRateLimit is the per-client request budget per window when none is configured.
const DefaultRateLimit = 60

// window is the period the limit refills over; tests shorten it.
var window = time.Minute

// maxClients bounds the limiter table before idle clients are pruned.
const maxClients = 10000

// RateLimiter limits the number of requests per client IP with a token bucket.
//
// Behavior:
//   - Each client gets a rate.Limiter refilling limit tokens per window (one
//     minute) with a burst of limit; limit <= 0 uses DefaultRateLimit.
//   - Identifies clients by their IP address.
//   - If no token is available, returns HTTP 429 Too Many Requests with a
//     Retry-After header holding the seconds until the next token.
//
// Each call returns an independent limiter with its own client table.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(config.AppConfig.Server.RateLimit))
func RateLimiter(limit int) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	every := rate.Every(window / time.Duration(limit))
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			if len(limiters) >= maxClients {
				prune(limiters, limit, now)
			}
			lim = rate.NewLimiter(every, limit)
			limiters[ip] = lim
		}
		mu.Unlock()

		r := lim.ReserveN(now, 1)
		if delay := r.DelayFrom(now); delay > 0 {
			r.CancelAt(now)
			c.Header("Retry-After", retryAfter(delay))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}

// prune drops clients whose bucket has refilled completely.
func prune(limiters map[string]*rate.Limiter, burst int, now time.Time) {
	for ip, lim := range limiters {
		if lim.TokensAt(now) >= float64(burst) {
			delete(limiters, ip)
		}
	}
}

// retryAfter renders a delay as whole seconds, at least 1.
func retryAfter(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
