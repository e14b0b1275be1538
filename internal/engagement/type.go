package engagement

import (
	"time"

	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

type RecordInput struct {
	CandidateID       string
	MonitorID         string
	PlatformCommentID string
	PostedAt          time.Time
}

type Filter struct {
	MonitorID string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Records   []model.PostedRecord
	Paginator paginator.Paginator
}

type RefreshSweepInput struct {
	// MinStaleness bounds how recently a record may have been checked and
	// still be swept. Zero falls back to the configured default.
	MinStaleness time.Duration
}

type RefreshFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type RefreshSweepOutput struct {
	Updated int              `json:"updated"`
	Failed  []RefreshFailure `json:"failed"`
}
