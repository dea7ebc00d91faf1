package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"menu-service/internal/errs"
	"menu-service/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorHandler is the single place failed requests get their response.
// Validation errors and echo's own HTTP errors keep their status and message;
// everything else is logged in full and answered with a generic 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	logger = logger.With().Str("component", "error_handler").Logger()

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := resolve(err, c, logger)

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, model.ErrorResponse{Message: message})
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}

func resolve(err error, c echo.Context, logger zerolog.Logger) (int, string) {
	var (
		validationErr *errs.ValidationError
		httpErr       *echo.HTTPError
		storeErr      *errs.StoreError
		internalErr   *errs.InternalError
	)

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	path := c.Request().URL.Path

	switch {
	case errors.As(err, &validationErr):
		logger.Warn().
			Str("request_id", requestID).
			Str("path", path).
			Int("status", validationErr.Status).
			Str("message", validationErr.Message).
			Msg("request rejected")
		return validationErr.Status, validationErr.Message

	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("request_id", requestID).Str("path", path).Msg("framework error")
			return http.StatusInternalServerError, errs.InternalMessage
		}
		return httpErr.Code, httpMessage(httpErr)

	case errors.As(err, &storeErr):
		logger.Error().
			Err(storeErr.Cause).
			Str("request_id", requestID).
			Str("path", path).
			Str("op", storeErr.Op).
			Str("sqlstate", storeErr.Code).
			Msg("store failure")

	case errors.As(err, &internalErr):
		logger.Error().
			Err(internalErr.Cause).
			Str("request_id", requestID).
			Str("path", path).
			Msg("internal failure")

	default:
		logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("path", path).
			Msg("unclassified failure")
	}

	return http.StatusInternalServerError, errs.InternalMessage
}

func httpMessage(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	if he.Message == nil {
		return http.StatusText(he.Code)
	}
	return fmt.Sprint(he.Message)
}
