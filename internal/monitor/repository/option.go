package repository

import (
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// Filter contains filtering options for monitor queries.
type Filter struct {
	IDs    []string
	Status model.MonitorStatus
}

// CreateOptions contains options for creating a monitor.
type CreateOptions struct {
	Monitor model.Monitor
}

// UpdateOptions contains options for updating a monitor. The full monitor
// is written; the caller loads and merges first.
type UpdateOptions struct {
	Monitor model.Monitor
}

// ListOptions contains options for listing monitors.
type ListOptions struct {
	Filter Filter
}

// GetOptions contains options for paginated monitor listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
