// Package common defines shared constants and sentinel errors used across
// the SupportPilot client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors: a required field is missing or malformed, detected
	// before any request is issued.
	ErrValidation = errors.New("validation error")

	// Authorization denials from the role gate. The action is refused locally;
	// the backend remains the authority either way.
	ErrDenied = errors.New("action not permitted")

	// Remote failures: the backend rejected the call or was unreachable.
	ErrRemote      = errors.New("remote call failed")
	ErrUnavailable = errors.New("server unavailable")

	// Auth/session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")

	// The user declined a confirmation prompt; nothing was attempted.
	ErrCancelled = errors.New("cancelled")

	// Credential payload could not be decoded. Treated as "no identity
	// available", never fatal.
	ErrDecode = errors.New("cannot decode credential")
)
