package domain

import (
	"user-service/internal/userservice/domain/valueobject"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// User is a registration record whose fields are always valid.
type User struct {
	username valueobject.UserName
	email    valueobject.Email
}

// NewUser validates username first, then email, and returns the first
// failure as a *FieldError.
func NewUser(username, email string) (*User, error) {
	u, err := valueobject.NewUserName(username)
	if err != nil {
		return nil, &FieldError{Field: FieldUsername, Err: err}
	}
	e, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, &FieldError{Field: FieldEmail, Err: err}
	}
	return &User{username: u, email: e}, nil
}

func (u *User) Username() valueobject.UserName { return u.username }
func (u *User) Email() valueobject.Email       { return u.email }
