package middleware

import (
	"net/http"
	"sync"
	"time"

	"lunargrid/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP. Grid rendering fires bursts of
// cell reads, so the burst size should comfortably exceed the per-second
// rate; both come from config.
func RateLimiter(requestsPerSecond, burst int) echo.MiddlewareFunc {
	visitors := make(map[string]*visitor)
	var mu sync.Mutex

	go func() {
		for {
			time.Sleep(time.Minute)

			mu.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(visitors, ip)
				}
			}
			mu.Unlock()
		}
	}()

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		v, exists := visitors[ip]
		if !exists {
			limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
			visitors[ip] = &visitor{limiter, time.Now()}
			return limiter
		}

		v.lastSeen = time.Now()
		return v.limiter
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !getVisitor(getIP(c)).Allow() {
				errorResponse := errors.NewErrorResponse(errors.SystemRateLimitExceeded, GetTraceID(c))
				return c.JSON(http.StatusTooManyRequests, errorResponse)
			}

			return next(c)
		}
	}
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
