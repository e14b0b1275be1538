package pacing

// Admission rejection reasons.
const (
	ReasonPostTooYoung       = "post_too_young"
	ReasonPostTooOld         = "post_too_old"
	ReasonNotEnoughComments  = "not_enough_comments"
	ReasonNotEnoughReactions = "not_enough_reactions"
	ReasonKeywordMismatch    = "keyword_mismatch"
)

// Publish-time rejection reasons.
const (
	ReasonDailyLimitExceeded = "daily_limit_exceeded"
	ReasonMinDelayNotElapsed = "min_delay_not_elapsed"
	ReasonWeekendPaused      = "weekend_paused"
)

// GateError reports why the gate refused a post. Rejections are expected
// outcomes the caller records on the candidate, not failures.
type GateError struct {
	Reason string
}

func (e *GateError) Error() string {
	return "gate rejected: " + e.Reason
}

// NewGateError creates a gate rejection with the given reason.
func NewGateError(reason string) *GateError {
	return &GateError{Reason: reason}
}
