package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menu-service/internal/errs"
	"menu-service/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	tests := []struct {
		name          string
		contentType   string
		body          string
		expectNext    bool
		expectName    string
		expectStatus  int
		expectMessage string
	}{
		{
			name:        "Valid body",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"item_name":"Pizza"}`,
			expectNext:  true,
			expectName:  "Pizza",
		},
		{
			name:        "Unknown fields are ignored",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"item_name":"Pizza","price":3}`,
			expectNext:  true,
			expectName:  "Pizza",
		},
		{
			name:          "Empty name",
			contentType:   echo.MIMEApplicationJSON,
			body:          `{"item_name":""}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name is required",
		},
		{
			name:          "Missing name",
			contentType:   echo.MIMEApplicationJSON,
			body:          `{}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name is required",
		},
		{
			name:          "Null name",
			contentType:   echo.MIMEApplicationJSON,
			body:          `{"item_name":null}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name is required",
		},
		{
			name:          "Whitespace-only name",
			contentType:   echo.MIMEApplicationJSON,
			body:          `{"item_name":"   "}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name must not be blank",
		},
		{
			name:          "Name too long",
			contentType:   echo.MIMEApplicationJSON,
			body:          `{"item_name":"` + strings.Repeat("a", 101) + `"}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name must be at most 100 characters",
		},
		{
			name:          "Name of wrong type",
			contentType:   echo.MIMEApplicationJSON,
			body:          `{"item_name":42}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name must be a string",
		},
		{
			name:          "Malformed JSON",
			contentType:   echo.MIMEApplicationJSON,
			body:          `{"item_name":`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "invalid request body",
		},
		{
			name:          "Empty body",
			contentType:   echo.MIMEApplicationJSON,
			body:          ``,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name is required",
		},
		{
			name:          "Non-JSON content type is treated as empty",
			contentType:   echo.MIMETextPlain,
			body:          `item_name=Pizza`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name is required",
		},
		{
			name:          "Blank name without content type",
			contentType:   "",
			body:          `{"item_name":""}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name is required",
		},
		{
			name:          "Valid name without content type",
			contentType:   "",
			body:          `{"item_name":"Pizza"}`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: "item_name is required",
		},
	}

	v := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/menu-items", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			var got model.CreateMenuItemRequest
			next := func(c echo.Context) error {
				called = true
				var ok bool
				got, ok = Validated[model.CreateMenuItemRequest](c)
				require.True(t, ok)
				return nil
			}

			err := Body[model.CreateMenuItemRequest](v)(next)(c)

			if tt.expectNext {
				require.NoError(t, err)
				assert.True(t, called)
				assert.Equal(t, tt.expectName, got.ItemName)
				return
			}

			assert.False(t, called, "handler must not run when validation fails")
			var validationErr *errs.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.expectStatus, validationErr.Status)
			assert.Equal(t, tt.expectMessage, validationErr.Message)
		})
	}
}

func TestBody_AlternateSchema(t *testing.T) {
	type renameRequest struct {
		NewName string `json:"new_name" validate:"required,min=3"`
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"new_name":"ab"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := Body[renameRequest](New())(func(echo.Context) error { return nil })(c)

	var validationErr *errs.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "new_name must be at least 3 characters", validationErr.Message)
}

func TestValidated_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := Validated[model.CreateMenuItemRequest](c)
	assert.False(t, ok)
}
