package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/util"
)

// RateLimiterMiddleware throttles by client ip. Applied to every route; the
// unauthenticated tracking endpoints are the ones that need it most, since
// PIN guessing across sessions is only bounded here.
func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
