// Package errs defines the failures that travel from handlers to the HTTP error handler.
//
// ValidationError is operational: its status and message are safe to show a client.
// StoreError and InternalError are not; the error handler logs them and answers 500.
package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// InternalMessage is the only text a client sees for a non-operational failure.
const InternalMessage = "Internal server error"

// ValidationError reports bad client input.
type ValidationError struct {
	Status  int
	Message string
}

// NewValidationError returns a 400 ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError wraps a failure reported by the database.
type StoreError struct {
	Op    string
	Code  string // SQLSTATE, empty when the failure never reached the server
	Cause error
}

// NewStoreError wraps err for the named store operation.
func NewStoreError(op string, err error) *StoreError {
	e := &StoreError{Op: op, Cause: err}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		e.Code = pgErr.Code
	}

	return e
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// InternalError wraps any other unexpected failure.
type InternalError struct {
	Cause error
}

// NewInternalError wraps err.
func NewInternalError(err error) *InternalError {
	return &InternalError{Cause: err}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
