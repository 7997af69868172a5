package service

import "errors"

// Boundary error taxonomy. Handlers map these onto HTTP statuses; anything
// else coming out of a service is a store failure and surfaces as 500.
var (
	ErrValidation         = errors.New("validation")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)
