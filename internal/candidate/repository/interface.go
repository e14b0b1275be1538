package repository

import (
	"context"
	"errors"

	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// ErrNotFound is returned when no candidate matches the query.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Candidate, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Candidate, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Candidate, paginator.Paginator, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Candidate, error)
	UpdateDecision(ctx context.Context, sc model.Scope, opts UpdateDecisionOptions) (model.Candidate, error)
	// ExistsByPost reports whether the monitor already has a candidate for
	// the given platform post, in any status.
	ExistsByPost(ctx context.Context, sc model.Scope, monitorID, platformPostID string) (bool, error)
	// ExistsPendingForMonitor reports whether the monitor still owns
	// candidates awaiting a decision.
	ExistsPendingForMonitor(ctx context.Context, sc model.Scope, monitorID string) (bool, error)
}
