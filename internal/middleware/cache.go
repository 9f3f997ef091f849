// Package middleware provides the Redis-backed response cache and
// rate limiter that sit in front of the API routes. Both are
// best-effort: a missing or failing Redis never blocks a request.
package middleware

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Leplia/Diller-shop/internal/config"
)

// cachedResponse is the envelope stored in Redis: status plus the raw
// JSON body. Only JSON 200s are cached, so no header set is kept.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// bodyCapture duplicates the response body into a buffer while it is
// written to the client.
type bodyCapture struct {
	http.ResponseWriter
	status int
	body   []byte
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// cacheKey hashes route+query so long filter strings stay within key
// size limits.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().URL.Path + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// ResponseCache returns middleware that serves GET responses from
// Redis when present and stores successful JSON responses with the
// configured TTL. With caching disabled or rdb nil it is a pass-through.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					return c.JSONBlob(cached.Status, cached.Body)
				}
			}

			capture := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = capture
			if err := next(c); err != nil {
				return err
			}

			if capture.status == http.StatusOK && json.Valid(capture.body) {
				raw, err := json.Marshal(cachedResponse{Status: capture.status, Body: capture.body})
				if err == nil {
					// Store failures are invisible to the client.
					storeCtx, cancel := contextWithTimeout(ctx, 500*time.Millisecond)
					defer cancel()
					_ = rdb.Set(storeCtx, key, raw, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}
