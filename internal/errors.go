package internal

import "fmt"

var (
	ErrNotFound     = fmt.Errorf("record not found")
	ErrDuplicate    = fmt.Errorf("duplicate record")
	ErrBadRequest   = fmt.Errorf("bad request")
	ErrUnauthorized = fmt.Errorf("unauthorized")

	// ErrInvalidResetToken covers signature failures, expiry, and tokens
	// that were already consumed. Callers must not be able to tell these
	// apart, so every failure in the redeem path maps to this one error.
	ErrInvalidResetToken = fmt.Errorf("invalid or expired token")
)
