package repository

import (
	"time"

	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// Filter contains filtering options for posted record queries.
type Filter struct {
	MonitorID string
}

// CreateOptions contains options for creating a posted record.
type CreateOptions struct {
	Record model.PostedRecord
}

// GetOptions contains options for paginated posted record listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// UpdateEngagementOptions updates the engagement snapshot of one record.
type UpdateEngagementOptions struct {
	ID         string
	Engagement model.Engagement
	CheckedAt  time.Time
}
