package common

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid identifier format")
	ErrStore      = errors.New("store operation failed") // wraps the driver error
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	// The API reports store failures to the caller as bad requests, with the
	// driver message attached.
	if errors.Is(err, ErrStore) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// StoreFailure carries a storage engine error. It matches ErrStore, and its
// message is the engine's own.
type StoreFailure struct {
	Err error
}

func NewStoreError(err error) error {
	return &StoreFailure{Err: err}
}

func (e *StoreFailure) Error() string {
	return e.Err.Error()
}

func (e *StoreFailure) Unwrap() []error {
	return []error{ErrStore, e.Err}
}
