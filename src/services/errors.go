package services

import "errors"

// Sentinel errors for explicit error handling with errors.Is()

var (
	// ErrInvalidCredentials indicates authentication failed. The same value
	// is returned for a wrong username and a wrong password so callers
	// cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
