package service

import (
	"context"
	"strings"

	"menu-service/internal/errs"
	"menu-service/internal/model"
	"menu-service/internal/repository"

	"github.com/rs/zerolog"
)

// msgItemNameRequired is the message returned for a blank item name.
const msgItemNameRequired = "Item name required"

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuItemRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuItemRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// GetMenuItems returns the repository result unchanged.
func (s *menuService) GetMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved menu items")

	return items, nil
}

// AddMenuItem rejects blank names and otherwise delegates to the repository.
// The name is stored exactly as given.
func (s *menuService) AddMenuItem(ctx context.Context, name string) (*model.CreatedMenuItem, error) {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn().Msg("menu item name is blank")
		return nil, errs.NewValidationError(msgItemNameRequired)
	}

	item, err := s.menuRepo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("item_id", item.ID).
		Str("item_name", item.Name).
		Msg("menu item added")

	return item, nil
}
