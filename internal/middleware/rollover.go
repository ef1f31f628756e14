package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// RolloverFn closes stale register days and guarantees today's row exists.
type RolloverFn func(ctx context.Context)

// Rollover runs the day-rollover routine before each request so the first
// request after midnight settles the previous day. The routine is tolerant
// of storage errors and never blocks the request.
func Rollover(fn RolloverFn) gin.HandlerFunc {
	return func(c *gin.Context) {
		fn(c.Request.Context())
		c.Next()
	}
}
