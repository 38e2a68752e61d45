// Package apperrors defines the error taxonomy shared by every handler and the
// single mapping from errors to HTTP status codes.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrValidation         = errors.New("invalid input")
)

// Status maps an error (possibly wrapped) to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInsufficientStock):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrAccountDeactivated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
