package common

import "errors"

// Callers should use errors.Is to match these values.
var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrStorage            = errors.New("storage failure")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Token errors. Expired tokens match both ErrInvalidToken and ErrTokenExpired.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Credential hash integrity error.
	ErrMalformedHash = errors.New("malformed password hash")
)
