package valueobject

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	MinUserNameLength = 12
	MaxUserNameLength = 31

	// ForbiddenUserNameChars is the complete set of runes a username may not
	// contain. Everything else, including punctuation such as '.', is allowed.
	ForbiddenUserNameChars = "!§$%&/()=?"
)

// UserName is a value object representing a validated username.
// It is immutable and validated on creation.
type UserName struct {
	value string
}

// NewUserName creates a new UserName from a string. Checks run in a fixed
// order and the first failing one is returned as a *UserNameError: length
// below MinUserNameLength, then length above MaxUserNameLength, then the
// first forbidden rune. Length is counted in runes.
func NewUserName(raw string) (UserName, error) {
	n := utf8.RuneCountInString(raw)
	if n < MinUserNameLength {
		return UserName{}, &UserNameError{Reason: UserNameTooShort}
	}
	if n > MaxUserNameLength {
		return UserName{}, &UserNameError{Reason: UserNameTooLong}
	}

	if c, found := lo.Find([]rune(raw), isForbiddenUserNameRune); found {
		return UserName{}, &UserNameError{Reason: UserNameInvalidCharacter, Char: c}
	}

	return UserName{value: raw}, nil
}

func isForbiddenUserNameRune(r rune) bool {
	return strings.ContainsRune(ForbiddenUserNameChars, r)
}

// String returns the username exactly as it was given to NewUserName.
func (u UserName) String() string {
	return u.value
}

// IsEmpty returns true if the UserName is the zero value.
func (u UserName) IsEmpty() bool {
	return u.value == ""
}

// Equals compares two UserNames for equality.
func (u UserName) Equals(other UserName) bool {
	return u.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (u UserName) MarshalText() ([]byte, error) {
	return []byte(u.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through NewUserName.
func (u *UserName) UnmarshalText(text []byte) error {
	v, err := NewUserName(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
