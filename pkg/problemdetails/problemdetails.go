package problemdetails

import (
	"fmt"
	"net/http"
)

const (
	TypeInvalidRequest    = "invalid-request"
	TypeInvalidUsername   = "invalid-username"
	TypeInvalidEmail      = "invalid-email"
	TypeNotFound          = "not-found"
	TypeRateLimitExceeded = "rate-limit-exceeded"
	TypeInternalError     = "internal-error"
)

type FieldError struct {
	Field     string `json:"field"`
	Message   string `json:"message"`
	Reason    string `json:"reason,omitempty"`
	Character string `json:"character,omitempty"`
}

type ProblemDetail struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   typeURI(problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// NewValidation reports a payload that parsed but failed field validation.
func NewValidation(problemType, title string, errors ...FieldError) *ProblemDetail {
	return &ProblemDetail{
		Type:   typeURI(problemType),
		Title:  title,
		Status: http.StatusUnprocessableEntity,
		Detail: "Request validation failed",
		Errors: errors,
	}
}

func typeURI(problemType string) string {
	return fmt.Sprintf("https://api.example.com/problems/%s", problemType)
}
