package monitor

import (
	"context"

	"engage-api/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (MonitorOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (MonitorOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (MonitorOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetMonitorOutput, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Monitor, error)
	SetStatus(ctx context.Context, sc model.Scope, ip SetStatusInput) (MonitorOutput, error)
	// Delete removes a monitor. Refused with ErrHasPendingCandidates while
	// the monitor still owns undecided candidates; pause it instead.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
