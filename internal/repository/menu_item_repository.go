package repository

import (
	"context"

	"menu-service/internal/database"
	"menu-service/internal/errs"
	"menu-service/internal/model"

	"github.com/rs/zerolog"
)

// menuItemRepository implements MenuItemRepository using PostgreSQL.
type menuItemRepository struct {
	db     database.Querier
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu item repository.
func NewMenuItemRepository(db database.Querier, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:     db,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

// GetAll retrieves all menu items ordered by id.
func (r *menuItemRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT item_id, item_name, price::text
		FROM menu_items
		ORDER BY item_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, errs.NewStoreError("query menu items", err)
	}
	defer rows.Close()

	items := make([]model.MenuItem, 0)
	for rows.Next() {
		var (
			item  model.MenuItem
			price string
		)
		if err := rows.Scan(&item.ID, &item.Name, &price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, errs.NewStoreError("scan menu item", err)
		}

		item.Price, err = model.NewPrice(price)
		if err != nil {
			r.logger.Error().Err(err).Int64("item_id", item.ID).Msg("failed to parse menu item price")
			return nil, errs.NewStoreError("scan menu item", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, errs.NewStoreError("iterate menu items", err)
	}

	return items, nil
}

// Create inserts a new menu item and returns its assigned id and stored name.
func (r *menuItemRepository) Create(ctx context.Context, name string) (*model.CreatedMenuItem, error) {
	query := `
		INSERT INTO menu_items (item_name)
		VALUES ($1)
		RETURNING item_id, item_name
	`

	var item model.CreatedMenuItem
	if err := r.db.QueryRow(ctx, query, name).Scan(&item.ID, &item.Name); err != nil {
		r.logger.Error().Err(err).Int("name_length", len(name)).Msg("failed to insert menu item")
		return nil, errs.NewStoreError("insert menu item", err)
	}

	r.logger.Debug().Int64("item_id", item.ID).Msg("menu item created")

	return &item, nil
}
