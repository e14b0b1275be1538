package repository

import (
	"context"
	"errors"

	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// ErrNotFound is returned when no monitor matches the query.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Monitor, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Monitor, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Monitor, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Monitor, paginator.Paginator, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Monitor, error)
	ListAllActive(ctx context.Context) ([]model.Monitor, error)
	// Delete removes the monitor unless it still owns pending candidates;
	// the guard and the delete are one statement. Zero rows is ErrNotFound.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
