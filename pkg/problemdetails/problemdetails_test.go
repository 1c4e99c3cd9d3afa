package problemdetails

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New(http.StatusBadRequest, TypeInvalidRequest, "Invalid Request", "bad body")

	assert.Equal(t, "https://api.example.com/problems/invalid-request", p.Type)
	assert.Equal(t, "Invalid Request", p.Title)
	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, "bad body", p.Detail)
	assert.Empty(t, p.Errors)
}

func TestNewValidation(t *testing.T) {
	p := NewValidation(TypeInvalidUsername, "Invalid Username", FieldError{
		Field:     "username",
		Message:   "invalid character",
		Reason:    "invalid_character",
		Character: "?",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, p.Status)
	assert.Contains(t, p.Type, TypeInvalidUsername)
	assert.Len(t, p.Errors, 1)
	assert.Equal(t, "?", p.Errors[0].Character)
}
