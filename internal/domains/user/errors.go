package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
)

// Service-level (business logic) errors
var (
	ErrWrongEmail     = errors.New("Wrong email.")
	ErrWrongPassword  = errors.New("Wrong password.")
	ErrInvalidPicture = errors.New("Image file is invalid or not supported.")
)
