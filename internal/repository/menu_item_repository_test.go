package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"menu-service/internal/database/dbtest"
	"menu-service/internal/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemRepository(t *testing.T) {
	pool := dbtest.Setup(t)
	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("GetAll on empty table returns empty slice", func(t *testing.T) {
		dbtest.Truncate(t, pool)

		items, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Create assigns increasing ids", func(t *testing.T) {
		dbtest.Truncate(t, pool)

		first, err := repo.Create(ctx, "Burger")
		require.NoError(t, err)
		second, err := repo.Create(ctx, "Pizza")
		require.NoError(t, err)

		assert.Equal(t, "Burger", first.Name)
		assert.Equal(t, "Pizza", second.Name)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("Create stores the name as given", func(t *testing.T) {
		dbtest.Truncate(t, pool)

		item, err := repo.Create(ctx, "  Soup of the day ")
		require.NoError(t, err)
		assert.Equal(t, "  Soup of the day ", item.Name)
	})

	t.Run("GetAll returns items ordered by id with default price", func(t *testing.T) {
		dbtest.Truncate(t, pool)

		names := []string{"Tacos", "Burger", "Apple Pie"}
		for _, name := range names {
			_, err := repo.Create(ctx, name)
			require.NoError(t, err)
		}

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, len(names))

		for i, item := range items {
			assert.Equal(t, names[i], item.Name)
			assert.Equal(t, "0.00", item.Price.String())
			if i > 0 {
				assert.Greater(t, item.ID, items[i-1].ID)
			}
		}
	})

	t.Run("GetAll reads stored prices", func(t *testing.T) {
		dbtest.Truncate(t, pool)

		_, err := pool.Exec(ctx, `INSERT INTO menu_items (item_name, price) VALUES ('Steak', 24.5)`)
		require.NoError(t, err)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "24.50", items[0].Price.String())
	})

	t.Run("Create rejects names longer than the column", func(t *testing.T) {
		dbtest.Truncate(t, pool)

		item, err := repo.Create(ctx, strings.Repeat("x", 101))

		assert.Nil(t, item)
		var storeErr *errs.StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "22001", storeErr.Code)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestMenuItemRepository_ClosedPool(t *testing.T) {
	pool := dbtest.Setup(t)
	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	pool.Close()

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "GetAll",
			call: func() error {
				_, err := repo.GetAll(ctx)
				return err
			},
		},
		{
			name: "Create",
			call: func() error {
				_, err := repo.Create(ctx, "Burger")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			var storeErr *errs.StoreError
			require.True(t, errors.As(err, &storeErr))
			assert.Empty(t, storeErr.Code)
		})
	}
}
