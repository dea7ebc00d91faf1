package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"menu-service/internal/errs"
	"menu-service/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuItemRepository is a mock implementation of MenuItemRepository.
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Create(ctx context.Context, name string) (*model.CreatedMenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreatedMenuItem), args.Error(1)
}

func mustPrice(t *testing.T, s string) model.Price {
	t.Helper()
	p, err := model.NewPrice(s)
	require.NoError(t, err)
	return p
}

func TestMenuService_GetMenuItems(t *testing.T) {
	ctx := context.Background()
	storeErr := errs.NewStoreError("query menu items", errors.New("connection refused"))

	testItems := []model.MenuItem{
		{ID: 1, Name: "Burger", Price: mustPrice(t, "0")},
		{ID: 2, Name: "Pizza", Price: mustPrice(t, "12.5")},
	}

	tests := []struct {
		name        string
		mockReturn  []model.MenuItem
		mockError   error
		expectError error
	}{
		{
			name:       "Returns repository items unchanged",
			mockReturn: testItems,
		},
		{
			name:       "Empty menu",
			mockReturn: []model.MenuItem{},
		},
		{
			name:        "Store error passes through",
			mockError:   storeErr,
			expectError: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuItemRepository)
			svc := NewMenuService(mockRepo, zerolog.Nop())

			if tt.mockReturn != nil {
				mockRepo.On("GetAll", ctx).Return(tt.mockReturn, tt.mockError)
			} else {
				mockRepo.On("GetAll", ctx).Return(nil, tt.mockError)
			}

			items, err := svc.GetMenuItems(ctx)

			if tt.expectError != nil {
				assert.Same(t, tt.expectError, err)
				assert.Nil(t, items)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, items)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_AddMenuItem(t *testing.T) {
	ctx := context.Background()
	storeErr := errs.NewStoreError("insert menu item", errors.New("connection reset"))

	tests := []struct {
		name          string
		input         string
		mockReturn    *model.CreatedMenuItem
		mockError     error
		expectRepo    bool
		expectStatus  int
		expectMessage string
		expectErr     error
	}{
		{
			name:       "Valid name is created",
			input:      "Pizza",
			mockReturn: &model.CreatedMenuItem{ID: 1, Name: "Pizza"},
			expectRepo: true,
		},
		{
			name:       "Name is passed untrimmed",
			input:      "  Pizza  ",
			mockReturn: &model.CreatedMenuItem{ID: 2, Name: "  Pizza  "},
			expectRepo: true,
		},
		{
			name:          "Empty name",
			input:         "",
			expectStatus:  http.StatusBadRequest,
			expectMessage: msgItemNameRequired,
		},
		{
			name:          "Whitespace-only name",
			input:         " \t\n ",
			expectStatus:  http.StatusBadRequest,
			expectMessage: msgItemNameRequired,
		},
		{
			name:       "Store error passes through",
			input:      "Pizza",
			mockError:  storeErr,
			expectRepo: true,
			expectErr:  storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuItemRepository)
			svc := NewMenuService(mockRepo, zerolog.Nop())

			if tt.expectRepo {
				if tt.mockReturn != nil {
					mockRepo.On("Create", ctx, tt.input).Return(tt.mockReturn, nil)
				} else {
					mockRepo.On("Create", ctx, tt.input).Return(nil, tt.mockError)
				}
			}

			item, err := svc.AddMenuItem(ctx, tt.input)

			switch {
			case tt.expectStatus != 0:
				var validationErr *errs.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, tt.expectStatus, validationErr.Status)
				assert.Equal(t, tt.expectMessage, validationErr.Message)
				assert.Nil(t, item)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			case tt.expectErr != nil:
				assert.Same(t, tt.expectErr, err)
				assert.Nil(t, item)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, item)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
