package errors

import "errors"

// Request validation failures, checked in this order.
var (
	ErrEmptyRequest       = errors.New("request is empty")
	ErrMissingEmail       = errors.New("no email specified")
	ErrInvalidEmailFormat = errors.New("email format not correct")
)

var (
	ErrAlreadyExists      = errors.New("email already used")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
