package scope

import "errors"

var (
	// ErrInvalidToken indicates a missing, malformed, or expired token.
	ErrInvalidToken = errors.New("invalid token")
)
