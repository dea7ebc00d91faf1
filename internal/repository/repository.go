package repository

import (
	"context"

	"menu-service/internal/model"
)

// MenuItemRepository defines the interface for menu item data access operations.
// Failures are returned as *errs.StoreError.
type MenuItemRepository interface {
	// GetAll retrieves every menu item ordered by item_id ascending.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// Create inserts a menu item with the given name; price takes the column default.
	Create(ctx context.Context, name string) (*model.CreatedMenuItem, error)
}
