package repository

import (
	"context"
	"errors"
	"time"

	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// ErrNotFound is returned when no posted record matches the query.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.PostedRecord, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.PostedRecord, paginator.Paginator, error)
	// ListStale returns records across all workspaces whose last engagement
	// check is older than the given time. The refresh sweep runs outside a
	// caller scope.
	ListStale(ctx context.Context, checkedBefore time.Time) ([]model.PostedRecord, error)
	// ListAllSince returns records across all workspaces posted at or after
	// the given time, for the pacing state rebuild on startup.
	ListAllSince(ctx context.Context, since time.Time) ([]model.PostedRecord, error)
	UpdateEngagement(ctx context.Context, opts UpdateEngagementOptions) (model.PostedRecord, error)
}
