package repository

import (
	"time"

	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// SortOldestFirst orders by creation time ascending, for bulk decisions
// that must hand the pacing budget to the oldest candidates first.
const SortOldestFirst = "oldest_first"

// Filter contains filtering options for candidate queries.
type Filter struct {
	IDs           []string
	MonitorID     string
	Status        model.CandidateStatus
	MinConfidence model.Confidence
	Confidence    model.Confidence
}

// CreateOptions contains options for creating a candidate.
type CreateOptions struct {
	Candidate model.Candidate
}

// ListOptions contains options for listing candidates.
type ListOptions struct {
	Filter Filter
	SortBy string
}

// GetOptions contains options for paginated candidate listing.
type GetOptions struct {
	Filter        Filter
	SortBy        string
	PaginateQuery paginator.PaginateQuery
}

// UpdateDecisionOptions records a lifecycle transition. Only non-nil
// optional fields are written. ExpectedStatus makes the write a
// compare-and-swap: the row is updated only while it still holds that
// status, so concurrent decisions cannot both land.
type UpdateDecisionOptions struct {
	ID             string
	Status         model.CandidateStatus
	ExpectedStatus model.CandidateStatus
	EditedText     *string
	FailureReason  *string
	DecidedAt      *time.Time
	PostedAt       *time.Time
}
