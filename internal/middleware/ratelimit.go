package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Leplia/Diller-shop/internal/config"
)

// RateLimit returns fixed-window rate limiting middleware: at most
// cfg.Limit requests per cfg.Window, counted per client IP in Redis so
// the limit holds across instances. Redis errors fail open: limiting
// is protection, not a dependency.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	// Buckets are whole seconds; a sub-second window would divide by
	// zero below, so it rounds up to one second.
	windowSecs := int64(cfg.Window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			window := time.Now().Unix() / windowSecs
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), window)

			ctx, cancel := contextWithTimeout(c.Request().Context(), 500*time.Millisecond)
			defer cancel()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				// First hit opens the window; expire a little late so
				// clock skew cannot drop an active counter.
				_ = rdb.Expire(ctx, key, cfg.Window+time.Second).Err()
			}
			if count > int64(cfg.Limit) {
				retry := time.Duration(windowSecs-time.Now().Unix()%windowSecs) * time.Second
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry/time.Second)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many requests"})
			}
			return next(c)
		}
	}
}

// contextWithTimeout bounds Redis round-trips inside middleware.
func contextWithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
