package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shukujitsu/internal/domain/dto"
	"github.com/guttosm/shukujitsu/internal/holiday"
	"github.com/guttosm/shukujitsu/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON ErrorResponse
// when the handler has not written a body itself.
//
// Status mapping:
//   - holiday.ErrInvalidArgument: 400
//   - context.DeadlineExceeded: 504
//   - anything else: 500
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status := StatusFor(err)

	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().Str("request_id", toString(rid)).Int("status", status).Err(err).Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(http.StatusText(status), err))
}

// StatusFor maps a service error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, holiday.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes a standardized error response and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
