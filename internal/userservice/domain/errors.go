package domain

import (
	"errors"
	"fmt"

	"user-service/internal/userservice/domain/valueobject"
)

var (
	ErrMissingField = errors.New("field is required")

	// Re-export value object errors for convenience.
	ErrInvalidEmail             = valueobject.ErrInvalidEmail
	ErrUserNameTooShort         = valueobject.ErrUserNameTooShort
	ErrUserNameTooLong          = valueobject.ErrUserNameTooLong
	ErrUserNameInvalidCharacter = valueobject.ErrUserNameInvalidCharacter
)

// FieldError ties a validation failure to the record field it came from.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
