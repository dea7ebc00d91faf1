// Package validation checks request bodies against struct-tag schemas before a handler runs.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"menu-service/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const bodyKey = "validation.body"

// New returns a validator that reports fields by their JSON name and understands "notblank".
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Body decodes the JSON request body into a T and validates it. On success the value is
// available to the handler through Validated; on failure the handler is never called and
// the first violation is returned as a *errs.ValidationError.
func Body[T any](v *validator.Validate) echo.MiddlewareFunc {
	binder := &echo.DefaultBinder{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body T
			if err := binder.BindBody(c, &body); err != nil {
				// A body that is not JSON is treated as empty and fails on its fields.
				if !errors.Is(err, echo.ErrUnsupportedMediaType) {
					return bindError(err)
				}
				body = *new(T)
			}

			if err := Struct(v, &body); err != nil {
				return err
			}

			c.Set(bodyKey, body)
			return next(c)
		}
	}
}

// Struct validates value outside of a request. The first violation is returned as a
// *errs.ValidationError.
func Struct(v *validator.Validate, value any) error {
	if err := v.Struct(value); err != nil {
		return violation(err)
	}
	return nil
}

// Validated returns the body accepted by Body for this request.
func Validated[T any](c echo.Context) (T, bool) {
	body, ok := c.Get(bodyKey).(T)
	return body, ok
}

func bindError(err error) error {
	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return echo.ErrStatusRequestEntityTooLarge
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.NewValidationError(fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.Kind()))
	}

	return errs.NewValidationError("invalid request body")
}

func violation(err error) *errs.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewValidationError("invalid request body")
	}

	return errs.NewValidationError(message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
