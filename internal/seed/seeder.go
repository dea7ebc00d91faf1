package seed

import (
	"context"
	"errors"
	"fmt"

	"menu-service/internal/errs"
	"menu-service/internal/model"
	"menu-service/internal/service"
	"menu-service/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Result counts what a seeding run did.
type Result struct {
	Created int
	Skipped int
}

// Seeder adds menu items through the service. Each name is first checked
// against the same schema as a create request body.
type Seeder struct {
	menuService service.MenuService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(menuService service.MenuService, logger zerolog.Logger) *Seeder {
	return &Seeder{
		menuService: menuService,
		validate:    validation.New(),
		logger:      logger.With().Str("component", "seeder").Logger(),
	}
}

// Run adds each name in order. Names that fail validation are skipped; any
// other failure stops the run and is returned with the counts so far.
func (s *Seeder) Run(ctx context.Context, names []string) (Result, error) {
	var res Result

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		err := validation.Struct(s.validate, &model.CreateMenuItemRequest{ItemName: name})
		var item *model.CreatedMenuItem
		if err == nil {
			item, err = s.menuService.AddMenuItem(ctx, name)
		}
		if err != nil {
			var validationErr *errs.ValidationError
			if errors.As(err, &validationErr) {
				s.logger.Warn().
					Int("position", i+1).
					Str("item_name", name).
					Str("reason", validationErr.Message).
					Msg("skipping menu item")
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("failed to add menu item %q: %w", name, err)
		}

		s.logger.Debug().Int64("item_id", item.ID).Str("item_name", item.Name).Msg("menu item added")
		res.Created++
	}

	s.logger.Info().
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Msg("seeding finished")

	return res, nil
}
