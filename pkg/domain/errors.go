package domain

import (
	"errors"
	"fmt"
)

var (
	ErrClassifierUnavailable = errors.New("classifier unavailable")
	ErrMalformedInput        = errors.New("malformed input")
	ErrStorageFailure        = errors.New("audit log storage failure")
)

type notFoundError struct {
	EntityType string
	ID         int64
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%d' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType string, id int64) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	return errors.As(err, &notFoundError)
}

// NewMalformedInputError wraps ErrMalformedInput with the offending detail.
func NewMalformedInputError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
