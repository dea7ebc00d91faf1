package handler

import (
	"net/http"

	"menu-service/internal/errs"
	"menu-service/internal/model"
	"menu-service/internal/service"
	"menu-service/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// MenuItemHandler handles menu item HTTP requests.
// Failures are returned to echo, never written here.
type MenuItemHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuItemHandler creates a new menu item handler.
func NewMenuItemHandler(service service.MenuService, logger zerolog.Logger) *MenuItemHandler {
	return &MenuItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu_item").Logger(),
	}
}

// GetAll handles GET /api/menu-items.
func (h *MenuItemHandler) GetAll(c echo.Context) error {
	items, err := h.service.GetMenuItems(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/menu-items.
func (h *MenuItemHandler) Create(c echo.Context) error {
	req, ok := validation.Validated[model.CreateMenuItemRequest](c)
	if !ok {
		// Mounted without the validation middleware; the service still rejects blank names.
		if err := c.Bind(&req); err != nil {
			return errs.NewValidationError("invalid request body")
		}
	}

	item, err := h.service.AddMenuItem(c.Request().Context(), req.ItemName)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}
