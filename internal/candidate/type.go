package candidate

import (
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// Sort keys for the pending queue.
const (
	SortConfidence = "confidence"
	SortEngagement = "engagement"
	SortRecency    = "recency"
)

type Filter struct {
	MonitorID  string
	Confidence model.Confidence
	Status     model.CandidateStatus
}

type GetInput struct {
	Filter        Filter
	SortBy        string
	PaginateQuery paginator.PaginateQuery
}

type GetCandidateOutput struct {
	Candidates []model.Candidate
	Paginator  paginator.Paginator
}

type CandidateOutput struct {
	Candidate model.Candidate
}

type ApproveInput struct {
	ID         string
	EditedText *string
}

type BulkApproveInput struct {
	IDs []string
}

type ApproveAboveInput struct {
	Threshold model.Confidence
}

// BulkFailure is one unsuccessful item from a bulk decision.
type BulkFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkApproveOutput carries per-item outcomes. A partially failed batch is
// a normal result, not an error.
type BulkApproveOutput struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// IntakeFailure is one post that could not be processed during a sweep.
type IntakeFailure struct {
	MonitorID      string `json:"monitor_id"`
	PlatformPostID string `json:"platform_post_id,omitempty"`
	Reason         string `json:"reason"`
}

type IntakeOutput struct {
	Admitted     int             `json:"admitted"`
	AutoApproved int             `json:"auto_approved"`
	Skipped      int             `json:"skipped"`
	Failed       []IntakeFailure `json:"failed"`
}
