package http

import (
	"encoding/json"

	"user-service/internal/userservice/domain"
)

// CreateUserRequest is the body of POST /user/create. Decoding it runs the
// username and email constructors, so a decoded request always holds a
// valid user and the first failing field aborts the whole record.
type CreateUserRequest struct {
	user *domain.User
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Username == nil {
		return &domain.FieldError{Field: domain.FieldUsername, Err: domain.ErrMissingField}
	}
	if raw.Email == nil {
		return &domain.FieldError{Field: domain.FieldEmail, Err: domain.ErrMissingField}
	}

	user, err := domain.NewUser(*raw.Username, *raw.Email)
	if err != nil {
		return err
	}
	r.user = user
	return nil
}

// User returns the validated user, or nil if the request was never decoded.
func (r *CreateUserRequest) User() *domain.User {
	return r.user
}

// AckResponse is the fixed acknowledgement for an accepted request.
type AckResponse struct {
	Status string `json:"status"`
}
