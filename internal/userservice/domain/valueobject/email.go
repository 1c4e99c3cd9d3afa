package valueobject

import (
	"errors"
	"net/mail"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxEmailLength     = 254
	MaxLocalPartLength = 64
)

var (
	errMissingAt        = errors.New("missing @ in address")
	errEmailTooLong     = errors.New("address exceeds 254 octets")
	errLocalPartTooLong = errors.New("local part exceeds 64 octets")
	errNotAddrSpec      = errors.New("not a bare addr-spec")
)

// Email is a value object representing a syntactically valid email address.
// It is immutable and validated on creation.
type Email struct {
	value string
}

// NewEmail creates a new Email from a string. The raw string is kept as-is:
// no trimming or case folding. Any failure is reported as ErrInvalidEmail.
func NewEmail(raw string) (Email, error) {
	if err := validation.Validate(raw,
		validation.Required,
		validation.By(maxOctets),
		validation.By(addrSpec),
	); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

// String returns the address exactly as it was given to NewEmail.
func (e Email) String() string {
	return e.value
}

// LocalPart returns everything before the last @.
func (e Email) LocalPart() string {
	at := strings.LastIndexByte(e.value, '@')
	if at < 0 {
		return ""
	}
	return e.value[:at]
}

// Domain returns everything after the last @.
func (e Email) Domain() string {
	at := strings.LastIndexByte(e.value, '@')
	if at < 0 {
		return ""
	}
	return e.value[at+1:]
}

// IsEmpty returns true if the Email is the zero value.
func (e Email) IsEmpty() bool {
	return e.value == ""
}

// Equals compares two Emails for equality.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through NewEmail, so a
// decoded Email is always valid.
func (e *Email) UnmarshalText(text []byte) error {
	v, err := NewEmail(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func maxOctets(value interface{}) error {
	s, _ := value.(string)
	if len(s) > MaxEmailLength {
		return errEmailTooLong
	}
	return nil
}

// addrSpec accepts exactly one RFC 5322 addr-spec. Display names, angle
// brackets, surrounding whitespace and trailing comments are rejected even
// though net/mail tolerates them.
func addrSpec(value interface{}) error {
	s, _ := value.(string)

	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return errMissingAt
	}
	if at > MaxLocalPartLength {
		return errLocalPartTooLong
	}
	if strings.TrimSpace(s) != s || strings.HasPrefix(s, "<") {
		return errNotAddrSpec
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return err
	}
	if addr.Name != "" {
		return errNotAddrSpec
	}

	domain := addr.Address[strings.LastIndexByte(addr.Address, '@'):]
	if !strings.HasSuffix(s, domain) {
		return errNotAddrSpec
	}
	return nil
}
