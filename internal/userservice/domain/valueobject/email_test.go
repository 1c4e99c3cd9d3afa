package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "simple address",
			raw:     "example@s.example",
			wantErr: nil,
		},
		{
			name:    "single label domain",
			raw:     "admin@mailserver1",
			wantErr: nil,
		},
		{
			name:    "hyphens in local part and domain",
			raw:     "example-indeed@strange-example.com",
			wantErr: nil,
		},
		{
			name:    "plus tag",
			raw:     "user+mailbox@example.com",
			wantErr: nil,
		},
		{
			name:    "quoted local part with space",
			raw:     `"john doe"@example.com`,
			wantErr: nil,
		},
		{
			name:    "mixed case kept as is",
			raw:     "John.Doe@Example.COM",
			wantErr: nil,
		},
		{
			name:    "local part at 64 octets",
			raw:     strings.Repeat("a", 64) + "@example.com",
			wantErr: nil,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "multiple at signs",
			raw:     "A@b@c@example.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "no at sign",
			raw:     "Abc.example.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing domain",
			raw:     "user@",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing local part",
			raw:     "@example.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "unescaped quotes and backslashes",
			raw:     `this\ still"not\allowed@example.com`,
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "special characters outside quotes",
			raw:     `a"b(c)d,e:f;g<h>i[j\k]l@example.com`,
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "local part over 64 octets",
			raw:     "1234567890123456789012345678901234567890123456789012345678901234+x@example.co",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "address over 254 octets",
			raw:     "user@" + strings.Repeat("a", 63) + "." + strings.Repeat("b", 63) + "." + strings.Repeat("c", 63) + "." + strings.Repeat("d", 60),
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "display name",
			raw:     "Barry Gibbs <bg@example.com>",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "angle brackets",
			raw:     "<bg@example.com>",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "surrounding whitespace",
			raw:     " user@example.com ",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "trailing comment",
			raw:     "user@example.com (work)",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "consecutive dots",
			raw:     "john..doe@example.com",
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, email.IsEmpty())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, email.String())
				assert.False(t, email.IsEmpty())
			}
		})
	}
}

func TestEmail_Parts(t *testing.T) {
	email, err := NewEmail(`"a@b"@example.com`)
	require.NoError(t, err)
	assert.Equal(t, `"a@b"`, email.LocalPart())
	assert.Equal(t, "example.com", email.Domain())

	var zero Email
	assert.Equal(t, "", zero.LocalPart())
	assert.Equal(t, "", zero.Domain())
}

func TestEmail_Equals(t *testing.T) {
	e1, _ := NewEmail("admin@mailserver1")
	e2, _ := NewEmail("admin@mailserver1")
	e3, _ := NewEmail("Admin@mailserver1")

	assert.True(t, e1.Equals(e2))
	assert.False(t, e1.Equals(e3))
}

func TestEmail_UnmarshalText(t *testing.T) {
	var email Email
	require.NoError(t, email.UnmarshalText([]byte("example@s.example")))
	assert.Equal(t, "example@s.example", email.String())

	text, err := email.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "example@s.example", string(text))

	err = email.UnmarshalText([]byte("Abc.example.com"))
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Equal(t, "example@s.example", email.String(), "failed decode must not modify the value")
}
