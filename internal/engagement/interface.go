package engagement

import (
	"context"

	"engage-api/internal/model"
)

type UseCase interface {
	// Record creates the posted history entry for a freshly published
	// comment.
	Record(ctx context.Context, sc model.Scope, ip RecordInput) (model.PostedRecord, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	// RefreshSweep re-reads engagement for stale records. Per-record
	// failures are collected, not fatal.
	RefreshSweep(ctx context.Context, ip RefreshSweepInput) (RefreshSweepOutput, error)
}
