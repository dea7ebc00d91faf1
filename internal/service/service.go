package service

import (
	"context"

	"menu-service/internal/model"
)

// MenuService defines operations for menu management.
type MenuService interface {
	// GetMenuItems returns every menu item ordered by id.
	GetMenuItems(ctx context.Context) ([]model.MenuItem, error)

	// AddMenuItem creates a menu item. A blank name fails with *errs.ValidationError.
	AddMenuItem(ctx context.Context, name string) (*model.CreatedMenuItem, error)
}
