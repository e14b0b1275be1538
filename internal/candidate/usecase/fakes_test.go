package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"engage-api/internal/candidate/repository"
	"engage-api/internal/engagement"
	"engage-api/internal/model"
	monitorRepo "engage-api/internal/monitor/repository"
	"engage-api/internal/pacing"
	"engage-api/internal/platform"
	pkgLog "engage-api/pkg/log"
	"engage-api/pkg/metrics"
	"engage-api/pkg/paginator"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    "error",
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
}

type fakeCandidateRepo struct {
	mu    sync.Mutex
	seq   int
	byID  map[string]model.Candidate
	order []string

	// afterDetail, when set, runs after a Detail read completes (outside
	// the lock) so tests can interleave concurrent decisions.
	afterDetail func(id string)
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{byID: map[string]model.Candidate{}}
}

func (f *fakeCandidateRepo) add(c model.Candidate) model.Candidate {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == "" {
		f.seq++
		c.ID = fmt.Sprintf("cand-%d", f.seq)
	}
	f.byID[c.ID] = c
	f.order = append(f.order, c.ID)
	return c
}

func (f *fakeCandidateRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Candidate, error) {
	c := opts.Candidate
	c.WorkspaceID = sc.WorkspaceID
	return f.add(c), nil
}

func (f *fakeCandidateRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Candidate, error) {
	f.mu.Lock()
	c, ok := f.byID[id]
	f.mu.Unlock()
	if !ok {
		return model.Candidate{}, repository.ErrNotFound
	}
	if f.afterDetail != nil {
		f.afterDetail(id)
	}
	return c, nil
}

func (f *fakeCandidateRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Candidate, paginator.Paginator, error) {
	list, err := f.List(ctx, sc, repository.ListOptions{Filter: opts.Filter, SortBy: opts.SortBy})
	if err != nil {
		return nil, paginator.Paginator{}, err
	}
	return list, paginator.Paginator{Total: int64(len(list)), Count: int64(len(list))}, nil
}

func (f *fakeCandidateRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Candidate
	for _, id := range f.order {
		c := f.byID[id]
		if opts.Filter.Status != "" && c.Status != opts.Filter.Status {
			continue
		}
		if opts.Filter.MonitorID != "" && c.MonitorID != opts.Filter.MonitorID {
			continue
		}
		if opts.Filter.Confidence != "" && c.Confidence != opts.Filter.Confidence {
			continue
		}
		if opts.Filter.MinConfidence != "" && c.Confidence.Rank() < opts.Filter.MinConfidence.Rank() {
			continue
		}
		out = append(out, c)
	}

	if opts.SortBy == repository.SortOldestFirst {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out, nil
}

func (f *fakeCandidateRepo) UpdateDecision(ctx context.Context, sc model.Scope, opts repository.UpdateDecisionOptions) (model.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.byID[opts.ID]
	if !ok {
		return model.Candidate{}, repository.ErrNotFound
	}
	// Guarded writes update the row only while it has the expected status,
	// like the AND status = $n predicate in the real repository.
	if opts.ExpectedStatus != "" && c.Status != opts.ExpectedStatus {
		return model.Candidate{}, repository.ErrNotFound
	}
	c.Status = opts.Status
	if opts.EditedText != nil {
		c.EditedText = opts.EditedText
	}
	if opts.FailureReason != nil {
		c.FailureReason = opts.FailureReason
	}
	if opts.DecidedAt != nil {
		c.DecidedAt = opts.DecidedAt
	}
	if opts.PostedAt != nil {
		c.PostedAt = opts.PostedAt
	}
	f.byID[opts.ID] = c
	return c, nil
}

func (f *fakeCandidateRepo) ExistsPendingForMonitor(ctx context.Context, sc model.Scope, monitorID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.MonitorID == monitorID && c.Status == model.CandidateStatusPendingApproval {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCandidateRepo) ExistsByPost(ctx context.Context, sc model.Scope, monitorID, platformPostID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.MonitorID == monitorID && c.Post.PlatformPostID == platformPostID {
			return true, nil
		}
	}
	return false, nil
}

type fakeMonitorRepo struct {
	monitors  map[string]model.Monitor
	detailErr error
}

func (f *fakeMonitorRepo) Create(ctx context.Context, sc model.Scope, opts monitorRepo.CreateOptions) (model.Monitor, error) {
	return opts.Monitor, nil
}

func (f *fakeMonitorRepo) Update(ctx context.Context, sc model.Scope, opts monitorRepo.UpdateOptions) (model.Monitor, error) {
	return opts.Monitor, nil
}

func (f *fakeMonitorRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Monitor, error) {
	if f.detailErr != nil {
		return model.Monitor{}, f.detailErr
	}
	m, ok := f.monitors[id]
	if !ok {
		return model.Monitor{}, monitorRepo.ErrNotFound
	}
	return m, nil
}

func (f *fakeMonitorRepo) Get(ctx context.Context, sc model.Scope, opts monitorRepo.GetOptions) ([]model.Monitor, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeMonitorRepo) List(ctx context.Context, sc model.Scope, opts monitorRepo.ListOptions) ([]model.Monitor, error) {
	var out []model.Monitor
	for _, m := range f.monitors {
		if opts.Filter.Status != "" && m.Status != opts.Filter.Status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMonitorRepo) ListAllActive(ctx context.Context) ([]model.Monitor, error) {
	return f.List(ctx, model.Scope{}, monitorRepo.ListOptions{
		Filter: monitorRepo.Filter{Status: model.MonitorStatusActive},
	})
}

func (f *fakeMonitorRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, ok := f.monitors[id]; !ok {
		return monitorRepo.ErrNotFound
	}
	delete(f.monitors, id)
	return nil
}

type recordedPost struct {
	CandidateID       string
	PlatformCommentID string
}

type fakeEngagementUC struct {
	mu      sync.Mutex
	records []recordedPost
}

func (f *fakeEngagementUC) Record(ctx context.Context, sc model.Scope, ip engagement.RecordInput) (model.PostedRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, recordedPost{
		CandidateID:       ip.CandidateID,
		PlatformCommentID: ip.PlatformCommentID,
	})
	return model.PostedRecord{ID: "rec-1", CandidateID: ip.CandidateID}, nil
}

func (f *fakeEngagementUC) Get(ctx context.Context, sc model.Scope, ip engagement.GetInput) (engagement.GetOutput, error) {
	return engagement.GetOutput{}, nil
}

func (f *fakeEngagementUC) RefreshSweep(ctx context.Context, ip engagement.RefreshSweepInput) (engagement.RefreshSweepOutput, error) {
	return engagement.RefreshSweepOutput{}, nil
}

type publishedComment struct {
	PostID string
	Text   string
}

type stubPublisher struct {
	mu    sync.Mutex
	seq   int
	calls []publishedComment
	err   error
}

func (s *stubPublisher) PostComment(ctx context.Context, platformPostID, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.seq++
	s.calls = append(s.calls, publishedComment{PostID: platformPostID, Text: text})
	return fmt.Sprintf("comment-%d", s.seq), nil
}

func (s *stubPublisher) FetchEngagement(ctx context.Context, platformCommentID string) (model.Engagement, error) {
	return model.Engagement{}, nil
}

type stubDiscovery struct {
	posts map[string][]model.PostCandidate
	err   error
}

func (s *stubDiscovery) FetchCandidatePosts(ctx context.Context, m model.Monitor) ([]model.PostCandidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.posts[m.ID], nil
}

type stubGenerator struct {
	err error
}

func (s *stubGenerator) Draft(ctx context.Context, post model.PostCandidate, m model.Monitor, style platform.StyleConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "Great point about " + post.PlatformPostID, nil
}

func (s *stubGenerator) Reply(ctx context.Context, post model.PostCandidate, existingComment string, style platform.StyleConfig) (string, error) {
	return "reply", nil
}

type env struct {
	uc        *usecase
	repo      *fakeCandidateRepo
	monitors  *fakeMonitorRepo
	records   *fakeEngagementUC
	publisher *stubPublisher
	discovery *stubDiscovery
	generator *stubGenerator
	gate      *pacing.Gate
	now       *time.Time
}

func newEnv(monitors ...model.Monitor) *env {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	byID := map[string]model.Monitor{}
	for _, m := range monitors {
		byID[m.ID] = m
	}

	e := &env{
		repo:      newFakeCandidateRepo(),
		monitors:  &fakeMonitorRepo{monitors: byID},
		records:   &fakeEngagementUC{},
		publisher: &stubPublisher{},
		discovery: &stubDiscovery{posts: map[string][]model.PostCandidate{}},
		generator: &stubGenerator{},
		now:       &now,
	}
	e.gate = pacing.New(func() time.Time { return *e.now })

	uc := New(testLogger(), Deps{
		Repo:         e.repo,
		MonitorRepo:  e.monitors,
		EngagementUC: e.records,
		Gate:         e.gate,
		Discovery:    e.discovery,
		Generator:    e.generator,
		Publisher:    e.publisher,
		Metrics:      metrics.New(nil),
	}).(*usecase)
	uc.clock = func() time.Time { return *e.now }
	e.uc = uc
	return e
}

func operatorScope() model.Scope {
	return model.Scope{WorkspaceID: "ws-1", UserID: "user-1", Role: model.RoleOperator}
}
