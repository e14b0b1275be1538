package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engage-api/internal/model"
)

func TestRestore(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	m := testMonitor()
	m.AntiDetection.DailyLimit = 2
	m.AntiDetection.MinDelayMinutes = 0

	records := []model.PostedRecord{
		// Yesterday, counts toward lastPostedAt but not today's budget.
		{MonitorID: m.ID, PostedAt: now.Add(-20 * time.Hour)},
		// Today.
		{MonitorID: m.ID, PostedAt: now.Add(-3 * time.Hour)},
		{MonitorID: m.ID, PostedAt: now.Add(-1 * time.Hour)},
		// Another monitor's record must not leak into this lane.
		{MonitorID: "other", PostedAt: now.Add(-time.Minute)},
	}

	g := New(func() time.Time { return now })
	Restore(g, []model.Monitor{m}, records, now)

	// Two publishes already happened today, so the budget is gone.
	err := g.Publish(context.Background(), m, func(context.Context) error { return nil })
	ge, ok := IsGateError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonDailyLimitExceeded, ge.Reason)
}

func TestRestoreMinDelayCarriesOver(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	m := testMonitor()
	m.AntiDetection.DailyLimit = 10

	g := New(func() time.Time { return now })
	Restore(g, []model.Monitor{m}, []model.PostedRecord{
		{MonitorID: m.ID, PostedAt: now.Add(-5 * time.Minute)},
	}, now)

	err := g.Publish(context.Background(), m, func(context.Context) error { return nil })
	ge, ok := IsGateError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonMinDelayNotElapsed, ge.Reason)
}

func TestRestoreSkipsBadTimezone(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	m := testMonitor()
	m.Timezone = "Mars/Olympus"

	g := New(func() time.Time { return now })
	// Must not panic or create a lane with a bogus day key.
	Restore(g, []model.Monitor{m}, []model.PostedRecord{
		{MonitorID: m.ID, PostedAt: now.Add(-time.Hour)},
	}, now)
}
