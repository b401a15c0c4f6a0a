package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidLogin          = errors.New("invalid login")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrConflict         = errors.New("login already exists")
)
