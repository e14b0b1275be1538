package usecase

import (
	"context"

	"engage-api/internal/model"
	"engage-api/internal/monitor"
	"engage-api/internal/monitor/repository"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip monitor.CreateInput) (monitor.MonitorOutput, error) {
	if err := validateConfig(ip.Config); err != nil {
		return monitor.MonitorOutput{}, err
	}

	m := newMonitorFromConfig(ip.Config)
	m.Status = model.MonitorStatusActive

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Monitor: m})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.Create.repo.Create: %v", err)
		return monitor.MonitorOutput{}, err
	}

	return monitor.MonitorOutput{Monitor: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip monitor.UpdateInput) (monitor.MonitorOutput, error) {
	if err := validateConfig(ip.Config); err != nil {
		return monitor.MonitorOutput{}, err
	}

	cur, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return monitor.MonitorOutput{}, monitor.ErrMonitorNotFound
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.Update.repo.Detail: %v", err)
		return monitor.MonitorOutput{}, err
	}

	m := newMonitorFromConfig(ip.Config)
	m.ID = cur.ID
	m.Status = cur.Status
	m.CreatedAt = cur.CreatedAt

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Monitor: m})
	if err != nil {
		if err == repository.ErrNotFound {
			return monitor.MonitorOutput{}, monitor.ErrMonitorNotFound
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.Update.repo.Update: %v", err)
		return monitor.MonitorOutput{}, err
	}

	return monitor.MonitorOutput{Monitor: updated}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (monitor.MonitorOutput, error) {
	m, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return monitor.MonitorOutput{}, monitor.ErrMonitorNotFound
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.Detail.repo.Detail: %v", err)
		return monitor.MonitorOutput{}, err
	}

	return monitor.MonitorOutput{Monitor: m}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip monitor.GetInput) (monitor.GetMonitorOutput, error) {
	monitors, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Status: ip.Filter.Status,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.Get.repo.Get: %v", err)
		return monitor.GetMonitorOutput{}, err
	}

	return monitor.GetMonitorOutput{Monitors: monitors, Paginator: pag}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip monitor.ListInput) ([]model.Monitor, error) {
	monitors, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Status: ip.Filter.Status,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.List.repo.List: %v", err)
		return nil, err
	}

	return monitors, nil
}

// SetStatus pauses or resumes a monitor. Pausing halts new candidate
// admission; already pending candidates are untouched.
func (uc *usecase) SetStatus(ctx context.Context, sc model.Scope, ip monitor.SetStatusInput) (monitor.MonitorOutput, error) {
	if !ip.Status.Valid() {
		return monitor.MonitorOutput{}, monitor.ErrInvalidStatus
	}

	cur, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return monitor.MonitorOutput{}, monitor.ErrMonitorNotFound
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.SetStatus.repo.Detail: %v", err)
		return monitor.MonitorOutput{}, err
	}

	if cur.Status == ip.Status {
		return monitor.MonitorOutput{Monitor: cur}, nil
	}

	cur.Status = ip.Status
	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Monitor: cur})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.SetStatus.repo.Update: %v", err)
		return monitor.MonitorOutput{}, err
	}

	return monitor.MonitorOutput{Monitor: updated}, nil
}

// Delete removes a monitor. The repository guard makes the pending-candidate
// check and the delete one statement, so a candidate admitted concurrently
// still blocks the removal.
func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.repo.Detail(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return monitor.ErrMonitorNotFound
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.Delete.repo.Detail: %v", err)
		return err
	}

	pending, err := uc.candidateRepo.ExistsPendingForMonitor(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.Delete.candidateRepo.ExistsPendingForMonitor: %v", err)
		return err
	}
	if pending {
		return monitor.ErrHasPendingCandidates
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			// The monitor was just read, so zero rows means the guard fired
			// against a candidate that arrived after the check above.
			return monitor.ErrHasPendingCandidates
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.Delete.repo.Delete: %v", err)
		return err
	}

	return nil
}

func newMonitorFromConfig(cfg monitor.Config) model.Monitor {
	return model.Monitor{
		Name:           cfg.Name,
		TargetMode:     cfg.TargetMode,
		TargetValues:   cfg.TargetValues,
		Keywords:       cfg.Keywords,
		Timezone:       cfg.Timezone,
		DailyStartTime: cfg.DailyStartTime,
		SkipWeekends:   cfg.SkipWeekends,
		AutoApprove:    cfg.AutoApprove,
		AntiDetection:  cfg.AntiDetection,
	}
}
