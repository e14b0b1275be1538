package candidate

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrAlreadyDecided is returned when a transition is attempted on a
	// candidate in a terminal state. Callers treat it as a no-op.
	ErrAlreadyDecided    = errors.New("candidate already decided")
	ErrInvalidSortKey    = errors.New("invalid sort key")
	ErrInvalidConfidence = errors.New("invalid confidence")
	ErrForbidden         = errors.New("caller may not decide candidates")
)
