package domain

import "errors"

var (
	// ErrUserNotFound indicates no account matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken indicates an account with the given email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrFieldsRequired indicates a required form field was left empty.
	ErrFieldsRequired = errors.New("all fields are required")
)
