package candidate

import (
	"context"

	"engage-api/internal/model"
)

type UseCase interface {
	// Intake runs one discovery sweep over the workspace's active monitors:
	// fetch posts, apply the admission gate, draft comment text, score, and
	// persist. Candidates born inside a monitor's auto-approve window are
	// approved and published immediately.
	Intake(ctx context.Context, sc model.Scope) (IntakeOutput, error)

	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetCandidateOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (CandidateOutput, error)

	Approve(ctx context.Context, sc model.Scope, ip ApproveInput) (CandidateOutput, error)
	Reject(ctx context.Context, sc model.Scope, id string) (CandidateOutput, error)
	BulkApprove(ctx context.Context, sc model.Scope, ip BulkApproveInput) (BulkApproveOutput, error)
	ApproveAllAboveConfidence(ctx context.Context, sc model.Scope, ip ApproveAboveInput) (BulkApproveOutput, error)
}
