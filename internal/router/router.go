package router

import (
	"menu-service/internal/config"
	"menu-service/internal/handler"
	"menu-service/internal/middleware"
	"menu-service/internal/model"
	"menu-service/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	cfg *config.Config,
	menuHandler *handler.MenuItemHandler,
	healthHandler *handler.HealthHandler,
	logger zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	e.Pre(echomw.RemoveTrailingSlash())

	// Outermost first: request id, metrics, logging, recovery, then the HTTP hardening.
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.Metrics.Enabled {
		e.Use(middleware.Metrics())
	}
	e.Use(middleware.Logging(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            31536000,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'",
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	if cfg.RateLimit.Enabled {
		e.Use(middleware.RateLimit(cfg.RateLimit))
	}

	health := e.Group("/health")
	health.GET("", healthHandler.Live)
	health.GET("/deep", healthHandler.Deep)

	v := validation.New()
	menu := e.Group("/api/menu-items")
	menu.GET("", menuHandler.GetAll)
	menu.POST("", menuHandler.Create, validation.Body[model.CreateMenuItemRequest](v))

	if cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
