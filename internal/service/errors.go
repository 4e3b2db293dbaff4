package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/identity"
	"github.com/vedran77/quill/pkg/validator"
)

// Error kinds. Every error returned by a service operation that is not an
// infrastructure failure matches exactly one of these with errors.Is.
var (
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("caller identity required")
)

var (
	ErrProfileExists   = fmt.Errorf("profile %w", ErrAlreadyExists)
	ErrProfileNotFound = fmt.Errorf("profile %w", ErrNotFound)
	ErrPostNotFound    = fmt.Errorf("post %w", ErrNotFound)
	ErrInvalidRating   = fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidArgument)
)

// ValidationError reports rejected input fields.
type ValidationError struct {
	Fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", ErrInvalidArgument, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func validationError(errs validator.ValidationErrors) error {
	if !errs.HasErrors() {
		return nil
	}
	return &ValidationError{Fields: errs}
}

func callerFrom(ctx context.Context) (uuid.UUID, error) {
	id, ok := identity.CallerFrom(ctx)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return id, nil
}
