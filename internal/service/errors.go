package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrEmptyUpdate is returned when a merge-patch update carries no fields.
	// It is raised before any store access.
	ErrEmptyUpdate = errors.New("no data provided for update")
)
