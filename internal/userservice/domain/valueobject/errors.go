package valueobject

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")

	ErrUserNameTooShort         = errors.New("username is too short")
	ErrUserNameTooLong          = errors.New("username is too long")
	ErrUserNameInvalidCharacter = errors.New("invalid character in username")
)

// UserNameReason enumerates why a username was rejected.
type UserNameReason int

const (
	UserNameTooShort UserNameReason = iota + 1
	UserNameTooLong
	UserNameInvalidCharacter
)

// String returns the snake_case name used in API responses.
func (r UserNameReason) String() string {
	switch r {
	case UserNameTooShort:
		return "too_short"
	case UserNameTooLong:
		return "too_long"
	case UserNameInvalidCharacter:
		return "invalid_character"
	default:
		return "unknown"
	}
}

// UserNameError reports the single rule a username failed.
// Char is set only when Reason is UserNameInvalidCharacter.
type UserNameError struct {
	Reason UserNameReason
	Char   rune
}

func (e *UserNameError) Error() string {
	switch e.Reason {
	case UserNameTooShort:
		return fmt.Sprintf("username is too short; it needs a minimum length of %d characters", MinUserNameLength)
	case UserNameTooLong:
		return fmt.Sprintf("username is too long; the maximum length is %d characters", MaxUserNameLength)
	case UserNameInvalidCharacter:
		return fmt.Sprintf("invalid character %q in username", string(e.Char))
	default:
		return "invalid username"
	}
}

// Is lets callers match a reason with errors.Is against the sentinels above.
func (e *UserNameError) Is(target error) bool {
	switch target {
	case ErrUserNameTooShort:
		return e.Reason == UserNameTooShort
	case ErrUserNameTooLong:
		return e.Reason == UserNameTooLong
	case ErrUserNameInvalidCharacter:
		return e.Reason == UserNameInvalidCharacter
	}
	return false
}
