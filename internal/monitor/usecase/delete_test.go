package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	candidateRepo "engage-api/internal/candidate/repository"
	"engage-api/internal/model"
	"engage-api/internal/monitor"
	"engage-api/internal/monitor/repository"
	pkgLog "engage-api/pkg/log"
	"engage-api/pkg/paginator"
)

type fakeMonitorRepo struct {
	monitors map[string]model.Monitor

	// deleteBlocked simulates the statement-level guard firing even though
	// the pre-check saw no pending candidates.
	deleteBlocked bool
	deleted       []string
}

func (f *fakeMonitorRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Monitor, error) {
	return opts.Monitor, nil
}

func (f *fakeMonitorRepo) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Monitor, error) {
	return opts.Monitor, nil
}

func (f *fakeMonitorRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Monitor, error) {
	m, ok := f.monitors[id]
	if !ok {
		return model.Monitor{}, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMonitorRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Monitor, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeMonitorRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Monitor, error) {
	return nil, nil
}

func (f *fakeMonitorRepo) ListAllActive(ctx context.Context) ([]model.Monitor, error) {
	return nil, nil
}

func (f *fakeMonitorRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, ok := f.monitors[id]; !ok {
		return repository.ErrNotFound
	}
	if f.deleteBlocked {
		return repository.ErrNotFound
	}
	delete(f.monitors, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCandidateRepo struct {
	pendingByMonitor map[string]bool
	existsErr        error
}

func (f *fakeCandidateRepo) Create(ctx context.Context, sc model.Scope, opts candidateRepo.CreateOptions) (model.Candidate, error) {
	return opts.Candidate, nil
}

func (f *fakeCandidateRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Candidate, error) {
	return model.Candidate{}, candidateRepo.ErrNotFound
}

func (f *fakeCandidateRepo) Get(ctx context.Context, sc model.Scope, opts candidateRepo.GetOptions) ([]model.Candidate, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeCandidateRepo) List(ctx context.Context, sc model.Scope, opts candidateRepo.ListOptions) ([]model.Candidate, error) {
	return nil, nil
}

func (f *fakeCandidateRepo) UpdateDecision(ctx context.Context, sc model.Scope, opts candidateRepo.UpdateDecisionOptions) (model.Candidate, error) {
	return model.Candidate{}, candidateRepo.ErrNotFound
}

func (f *fakeCandidateRepo) ExistsByPost(ctx context.Context, sc model.Scope, monitorID, platformPostID string) (bool, error) {
	return false, nil
}

func (f *fakeCandidateRepo) ExistsPendingForMonitor(ctx context.Context, sc model.Scope, monitorID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.pendingByMonitor[monitorID], nil
}

func newDeleteEnv(pending map[string]bool, monitors ...model.Monitor) (monitor.UseCase, *fakeMonitorRepo) {
	byID := map[string]model.Monitor{}
	for _, m := range monitors {
		byID[m.ID] = m
	}
	repo := &fakeMonitorRepo{monitors: byID}
	candidates := &fakeCandidateRepo{pendingByMonitor: pending}
	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:    "error",
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
	return New(l, repo, candidates), repo
}

func TestDeleteRefusedWhilePendingCandidates(t *testing.T) {
	sc := model.Scope{WorkspaceID: "ws-1", UserID: "user-1", Role: model.RoleOperator}
	uc, repo := newDeleteEnv(
		map[string]bool{"mon-1": true},
		model.Monitor{ID: "mon-1", Status: model.MonitorStatusActive},
	)

	err := uc.Delete(context.Background(), sc, "mon-1")
	require.ErrorIs(t, err, monitor.ErrHasPendingCandidates)

	_, err = repo.Detail(context.Background(), sc, "mon-1")
	assert.NoError(t, err, "monitor must survive a refused delete")
}

func TestDeleteRemovesMonitorWithoutPending(t *testing.T) {
	sc := model.Scope{WorkspaceID: "ws-1", UserID: "user-1", Role: model.RoleOperator}
	uc, repo := newDeleteEnv(
		map[string]bool{},
		model.Monitor{ID: "mon-1", Status: model.MonitorStatusPaused},
	)

	require.NoError(t, uc.Delete(context.Background(), sc, "mon-1"))
	assert.Equal(t, []string{"mon-1"}, repo.deleted)

	_, err := repo.Detail(context.Background(), sc, "mon-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteUnknownMonitor(t *testing.T) {
	sc := model.Scope{WorkspaceID: "ws-1", UserID: "user-1", Role: model.RoleOperator}
	uc, _ := newDeleteEnv(map[string]bool{})

	err := uc.Delete(context.Background(), sc, "mon-missing")
	assert.ErrorIs(t, err, monitor.ErrMonitorNotFound)
}

func TestDeleteGuardFiringAfterPrecheck(t *testing.T) {
	sc := model.Scope{WorkspaceID: "ws-1", UserID: "user-1", Role: model.RoleOperator}
	uc, repo := newDeleteEnv(
		map[string]bool{},
		model.Monitor{ID: "mon-1", Status: model.MonitorStatusActive},
	)
	repo.deleteBlocked = true

	// A candidate admitted between the pre-check and the delete makes the
	// guarded statement touch zero rows.
	err := uc.Delete(context.Background(), sc, "mon-1")
	assert.ErrorIs(t, err, monitor.ErrHasPendingCandidates)
}

func TestDeletePendingCheckFailureSurfaces(t *testing.T) {
	sc := model.Scope{WorkspaceID: "ws-1", UserID: "user-1", Role: model.RoleOperator}
	byID := map[string]model.Monitor{"mon-1": {ID: "mon-1"}}
	repo := &fakeMonitorRepo{monitors: byID}
	boom := errors.New("connection refused")
	candidates := &fakeCandidateRepo{existsErr: boom}
	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:    "error",
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
	uc := New(l, repo, candidates)

	err := uc.Delete(context.Background(), sc, "mon-1")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, repo.deleted)
}
