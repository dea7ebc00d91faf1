package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"menu-service/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// TooManyRequestsMessage is returned to clients that exceed their allowance.
const TooManyRequestsMessage = "Too many requests, please try again later."

// RateLimit allows each client IP cfg.Requests requests per cfg.Window, refilled
// continuously. Health and metrics endpoints are exempt.
func RateLimit(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	perSecond := float64(cfg.Requests) / cfg.Window.Seconds()
	retryAfter := strconv.Itoa(max(1, int(math.Ceil(1/perSecond))))

	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     cfg.Requests,
		ExpiresIn: cfg.Window,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/health") || path == "/metrics"
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client").SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			rateLimitRejects.Inc()
			c.Response().Header().Set("Retry-After", retryAfter)
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
			return echo.NewHTTPError(http.StatusTooManyRequests, TooManyRequestsMessage)
		},
	})
}
