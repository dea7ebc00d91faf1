package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"menu-service/internal/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logging logs HTTP requests with timing information. A returned error is handed to
// the error handler first so the logged status is the one the client receives.
func Logging(logger zerolog.Logger) echo.MiddlewareFunc {
	logger = logger.With().Str("component", "http").Logger()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			switch {
			case res.Status >= http.StatusInternalServerError:
				event = logger.Error()
			case res.Status >= http.StatusBadRequest:
				event = logger.Warn()
			default:
				event = logger.Info()
			}

			event.
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Int64("bytes_out", res.Size).
				Str("remote_ip", c.RealIP()).
				Msg("http request")

			// Already handled; echo skips committed responses when it sees this again.
			return err
		}
	}
}

// Recovery turns a panic into an *errs.InternalError for the error handler.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				panicRecoveries.Inc()

				logger.Error().
					Interface("panic", r).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				err = errs.NewInternalError(fmt.Errorf("panic: %v", r))
			}()

			return next(c)
		}
	}
}
