// Package server provides the HTTP JSON API for scoring resumes and reading stored results.
package server

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrStoreUnavailable indicates the server was started without a results database
var ErrStoreUnavailable = errors.New("results store is not configured")

// ErrRoleNotFound indicates the requested job role is not in the catalog
type ErrRoleNotFound struct {
	Title string
}

func (e *ErrRoleNotFound) Error() string {
	return fmt.Sprintf("job role not found: %s", e.Title)
}

// ErrInvalidRunID indicates a run id path segment that is not a UUID
type ErrInvalidRunID struct {
	Value string
}

func (e *ErrInvalidRunID) Error() string {
	return fmt.Sprintf("invalid run id: %s", e.Value)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrRoleNotFound
		badRunID   *ErrInvalidRunID
		validation *ErrValidation
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRunID), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
