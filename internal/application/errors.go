package application

import "errors"

var (
	// ErrInvalidConnection is returned when no bootstrap servers are configured
	ErrInvalidConnection = errors.New("invalid connection: no bootstrap servers")

	// ErrProfileNotFound is returned when a named profile is not in the config file
	ErrProfileNotFound = errors.New("profile not found")
)
