package handler

import (
	"context"
	"net/http"
	"time"

	"menu-service/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler serves liveness and deep (store) health checks.
type HealthHandler struct {
	store       StoreProber
	environment string
	timeout     time.Duration
	now         func() time.Time
	logger      zerolog.Logger
}

// NewHealthHandler creates a health handler. timeout bounds the deep check's store probe.
func NewHealthHandler(store StoreProber, environment string, timeout time.Duration, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		store:       store,
		environment: environment,
		timeout:     timeout,
		now:         time.Now,
		logger:      logger.With().Str("handler", "health").Logger(),
	}
}

// Live handles GET /health. It never touches the store.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthResponse{
		Status:      model.StatusUp,
		Timestamp:   timestamp(h.now()),
		Environment: h.environment,
	})
}

// Deep handles GET /health/deep. A failed probe is reported as 503 here
// instead of going through the error handler.
func (h *HealthHandler) Deep(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	var serverTime time.Time
	err := h.store.QueryRow(ctx, "SELECT NOW()").Scan(&serverTime)
	if err != nil {
		h.logger.Error().Err(err).Msg("database health check failed")

		return c.JSON(http.StatusServiceUnavailable, model.HealthResponse{
			Status:      model.StatusDown,
			Timestamp:   timestamp(h.now()),
			Environment: h.environment,
			Database: &model.DatabaseHealth{
				Status: model.DatabaseDisconnected,
				Error:  err.Error(),
			},
		})
	}

	return c.JSON(http.StatusOK, model.HealthResponse{
		Status:      model.StatusUp,
		Timestamp:   timestamp(h.now()),
		Environment: h.environment,
		Database: &model.DatabaseHealth{
			Status:     model.DatabaseConnected,
			ServerTime: &serverTime,
		},
	})
}
