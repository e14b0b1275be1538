package monitor

import (
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

// Config is the operator-supplied part of a monitor, shared by create and
// update.
type Config struct {
	Name           string
	TargetMode     model.TargetMode
	TargetValues   []string
	Keywords       []string
	Timezone       string
	DailyStartTime string
	SkipWeekends   bool
	AutoApprove    model.AutoApprove
	AntiDetection  model.AntiDetection
}

type CreateInput struct {
	Config Config
}

type UpdateInput struct {
	ID     string
	Config Config
}

type SetStatusInput struct {
	ID     string
	Status model.MonitorStatus
}

type MonitorOutput struct {
	Monitor model.Monitor
}

type Filter struct {
	IDs    []string
	Status model.MonitorStatus
}

type ListInput struct {
	Filter Filter
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetMonitorOutput struct {
	Monitors  []model.Monitor
	Paginator paginator.Paginator
}
