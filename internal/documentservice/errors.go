package documentservice

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter signals a required routing field left empty.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrNotFound signals a missing document or array item on a mutation path.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest signals caller data that fails validation. Nothing was written.
	ErrBadRequest = errors.New("bad request")
	// ErrStoreFailure signals a failed store call. It is never retried.
	ErrStoreFailure = errors.New("store failure")
)

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

func storeFailure(message string, err error) error {
	return fmt.Errorf("%s: %w: %w", message, ErrStoreFailure, err)
}
