package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engage-api/internal/candidate/repository"
	"engage-api/internal/model"
)

func intakeMonitorFixture() model.Monitor {
	return model.Monitor{
		ID:          "mon-1",
		WorkspaceID: "ws-1",
		Status:      model.MonitorStatusActive,
		TargetMode:  model.TargetModeProfile,
		Timezone:    "UTC",
		AntiDetection: model.AntiDetection{
			MinExistingComments: 2,
			MinPostReactions:    5,
			MinPostAgeMinutes:   30,
			MaxPostAgeHours:     24,
			DailyLimit:          10,
			MinDelayMinutes:     0,
		},
	}
}

func admissiblePost(e *env, id string) model.PostCandidate {
	return model.PostCandidate{
		PlatformPostID: id,
		Content:        "shipping the new release",
		Comments:       3,
		Reactions:      10,
		PublishedAt:    e.now.Add(-2 * time.Hour),
	}
}

func TestIntakeAdmitsAndScores(t *testing.T) {
	e := newEnv(intakeMonitorFixture())
	e.discovery.posts["mon-1"] = []model.PostCandidate{admissiblePost(e, "post-1")}

	out, err := e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Admitted)
	assert.Equal(t, 0, out.AutoApproved)
	assert.Empty(t, out.Failed)

	pending, _ := e.repo.List(context.Background(), operatorScope(), pendingFilter())
	require.Len(t, pending, 1)
	cand := pending[0]
	assert.Equal(t, model.CandidateStatusPendingApproval, cand.Status)
	assert.Equal(t, model.ConfidenceMedium, cand.Confidence)
	assert.Equal(t, 19, cand.RelevanceScore)
	assert.NotEmpty(t, cand.GeneratedText)
}

func TestIntakeSkipsGateRejectedPosts(t *testing.T) {
	e := newEnv(intakeMonitorFixture())
	young := admissiblePost(e, "post-young")
	young.PublishedAt = e.now.Add(-10 * time.Minute)
	quiet := admissiblePost(e, "post-quiet")
	quiet.Comments = 0
	e.discovery.posts["mon-1"] = []model.PostCandidate{young, quiet, admissiblePost(e, "post-ok")}

	out, err := e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Admitted)
	assert.Equal(t, 2, out.Skipped)
}

func TestIntakeSkipsDuplicatePosts(t *testing.T) {
	e := newEnv(intakeMonitorFixture())
	e.discovery.posts["mon-1"] = []model.PostCandidate{admissiblePost(e, "post-1")}

	out, err := e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	require.Equal(t, 1, out.Admitted)

	// The same post on a second sweep is suppressed.
	out, err = e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Admitted)
	assert.Equal(t, 1, out.Skipped)
}

func TestIntakeAutoApproveWindow(t *testing.T) {
	mon := intakeMonitorFixture()
	mon.Timezone = "America/New_York"
	mon.AutoApprove = model.AutoApprove{Enabled: true, StartTime: "09:00", EndTime: "17:00"}
	e := newEnv(mon)
	e.discovery.posts["mon-1"] = []model.PostCandidate{admissiblePost(e, "post-1")}

	// 15:00 UTC is 10:00 in New York, inside the window.
	*e.now = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	e.discovery.posts["mon-1"][0].PublishedAt = e.now.Add(-2 * time.Hour)

	out, err := e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Admitted)
	assert.Equal(t, 1, out.AutoApproved)
	require.Len(t, e.publisher.calls, 1)

	// 01:00 UTC next day is 20:00 New York, outside the window: the
	// candidate stays pending.
	*e.now = time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)
	e.discovery.posts["mon-1"] = []model.PostCandidate{{
		PlatformPostID: "post-2",
		Content:        "evening post",
		Comments:       3,
		Reactions:      10,
		PublishedAt:    e.now.Add(-2 * time.Hour),
	}}

	out, err = e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Admitted)
	assert.Equal(t, 0, out.AutoApproved)
	assert.Len(t, e.publisher.calls, 1)
}

func TestIntakeSkipsPausedMonitors(t *testing.T) {
	mon := intakeMonitorFixture()
	mon.Status = model.MonitorStatusPaused
	e := newEnv(mon)
	e.discovery.posts["mon-1"] = []model.PostCandidate{admissiblePost(e, "post-1")}

	out, err := e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Admitted)
}

func TestIntakeRespectsDailyStartAndWeekends(t *testing.T) {
	mon := intakeMonitorFixture()
	mon.DailyStartTime = "14:00"
	e := newEnv(mon)
	e.discovery.posts["mon-1"] = []model.PostCandidate{admissiblePost(e, "post-1")}

	// Noon UTC is before the 14:00 daily start.
	out, err := e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Admitted)

	*e.now = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	e.discovery.posts["mon-1"][0].PublishedAt = e.now.Add(-2 * time.Hour)
	out, err = e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Admitted)

	// Saturday with skip_weekends on: nothing moves.
	mon2 := intakeMonitorFixture()
	mon2.SkipWeekends = true
	e2 := newEnv(mon2)
	*e2.now = time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	e2.discovery.posts["mon-1"] = []model.PostCandidate{admissiblePost(e2, "post-1")}
	e2.discovery.posts["mon-1"][0].PublishedAt = e2.now.Add(-2 * time.Hour)

	out, err = e2.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Admitted)
}

func TestIntakeCollectsDiscoveryFailures(t *testing.T) {
	e := newEnv(intakeMonitorFixture())
	e.discovery.err = errTest("feed unavailable")

	out, err := e.uc.Intake(context.Background(), operatorScope())
	require.NoError(t, err, "a broken feed must not abort the sweep")
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "mon-1", out.Failed[0].MonitorID)
	assert.Equal(t, "feed unavailable", out.Failed[0].Reason)
}

type errTest string

func (e errTest) Error() string { return string(e) }

func pendingFilter() repository.ListOptions {
	return repository.ListOptions{
		Filter: repository.Filter{Status: model.CandidateStatusPendingApproval},
	}
}
