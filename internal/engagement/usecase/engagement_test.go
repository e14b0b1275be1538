package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engage-api/internal/engagement"
	"engage-api/internal/engagement/repository"
	"engage-api/internal/model"
	pkgLog "engage-api/pkg/log"
	"engage-api/pkg/metrics"
	"engage-api/pkg/paginator"
)

type fakeRepo struct {
	records []model.PostedRecord
	updated map[string]model.Engagement
}

func (f *fakeRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.PostedRecord, error) {
	rec := opts.Record
	rec.ID = "rec-created"
	rec.WorkspaceID = sc.WorkspaceID
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.PostedRecord, paginator.Paginator, error) {
	return f.records, paginator.Paginator{Total: int64(len(f.records))}, nil
}

func (f *fakeRepo) ListStale(ctx context.Context, checkedBefore time.Time) ([]model.PostedRecord, error) {
	var out []model.PostedRecord
	for _, rec := range f.records {
		if rec.EngagementCheckedAt.Before(checkedBefore) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAllSince(ctx context.Context, since time.Time) ([]model.PostedRecord, error) {
	return f.records, nil
}

func (f *fakeRepo) UpdateEngagement(ctx context.Context, opts repository.UpdateEngagementOptions) (model.PostedRecord, error) {
	if f.updated == nil {
		f.updated = map[string]model.Engagement{}
	}
	f.updated[opts.ID] = opts.Engagement
	return model.PostedRecord{ID: opts.ID, Engagement: opts.Engagement, EngagementCheckedAt: opts.CheckedAt}, nil
}

type fakePublisher struct {
	engagements map[string]model.Engagement
	failFor     map[string]error
}

func (f *fakePublisher) PostComment(ctx context.Context, platformPostID, text string) (string, error) {
	return "comment-1", nil
}

func (f *fakePublisher) FetchEngagement(ctx context.Context, platformCommentID string) (model.Engagement, error) {
	if err, ok := f.failFor[platformCommentID]; ok {
		return model.Engagement{}, err
	}
	return f.engagements[platformCommentID], nil
}

func TestRefreshSweepPartialFailure(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	old := now.Add(-24 * time.Hour)

	repo := &fakeRepo{
		records: []model.PostedRecord{
			{ID: "rec-1", PlatformCommentID: "c-1", EngagementCheckedAt: old},
			{ID: "rec-2", PlatformCommentID: "c-2", EngagementCheckedAt: old},
			{ID: "rec-3", PlatformCommentID: "c-3", EngagementCheckedAt: now},
		},
	}
	pub := &fakePublisher{
		engagements: map[string]model.Engagement{
			"c-1": {Likes: 7, Replies: 2},
		},
		failFor: map[string]error{
			"c-2": errors.New("comment deleted"),
		},
	}

	l := pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: pkgLog.ModeDevelopment, Encoding: pkgLog.EncodingConsole})
	uc := New(l, repo, pub, metrics.New(nil), time.Hour).(*usecase)
	uc.clock = func() time.Time { return now }

	out, err := uc.RefreshSweep(context.Background(), engagement.RefreshSweepInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Updated)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "rec-2", out.Failed[0].ID)
	assert.Equal(t, "comment deleted", out.Failed[0].Reason)

	// Fresh records are left alone, failed records keep their snapshot.
	assert.Equal(t, model.Engagement{Likes: 7, Replies: 2}, repo.updated["rec-1"])
	_, touched := repo.updated["rec-2"]
	assert.False(t, touched)
	_, touched = repo.updated["rec-3"]
	assert.False(t, touched)
}
