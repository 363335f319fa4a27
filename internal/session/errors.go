package session

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrConfigMissing     = errors.New("configuration missing")
	ErrCredentialService = errors.New("credential service error")
	ErrMissingDependency = errors.New("missing dependency")
	ErrSessionExpired    = errors.New("session expired")
	ErrNoSession         = errors.New("no active session")
)
