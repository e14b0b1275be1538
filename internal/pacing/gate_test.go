package pacing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engage-api/internal/model"
)

func testMonitor() model.Monitor {
	return model.Monitor{
		ID:       "mon-1",
		Timezone: "UTC",
		AntiDetection: model.AntiDetection{
			MinExistingComments: 2,
			MinPostReactions:    5,
			MinPostAgeMinutes:   30,
			MaxPostAgeHours:     24,
			DailyLimit:          2,
			MinDelayMinutes:     15,
		},
	}
}

func TestAdmit(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	post := func(ageMinutes, comments, reactions int, content string) model.PostCandidate {
		return model.PostCandidate{
			Content:     content,
			Comments:    comments,
			Reactions:   reactions,
			PublishedAt: now.Add(-time.Duration(ageMinutes) * time.Minute),
		}
	}

	tests := []struct {
		name       string
		post       model.PostCandidate
		monitor    func() model.Monitor
		wantReason string
	}{
		{
			name:    "passes all thresholds",
			post:    post(35, 2, 5, "shipping update"),
			monitor: testMonitor,
		},
		{
			name:       "post too young at 10 minutes",
			post:       post(10, 2, 5, ""),
			monitor:    testMonitor,
			wantReason: ReasonPostTooYoung,
		},
		{
			name:       "post too old past 24 hours",
			post:       post(25*60, 2, 5, ""),
			monitor:    testMonitor,
			wantReason: ReasonPostTooOld,
		},
		{
			name:       "one comment is not enough",
			post:       post(35, 1, 10, ""),
			monitor:    testMonitor,
			wantReason: ReasonNotEnoughComments,
		},
		{
			name:       "reactions below threshold",
			post:       post(35, 2, 4, ""),
			monitor:    testMonitor,
			wantReason: ReasonNotEnoughReactions,
		},
		{
			name: "keyword filter misses",
			post: post(35, 2, 5, "quarterly earnings recap"),
			monitor: func() model.Monitor {
				m := testMonitor()
				m.Keywords = []string{"kubernetes", "golang"}
				return m
			},
			wantReason: ReasonKeywordMismatch,
		},
		{
			name: "keyword filter matches case-insensitively",
			post: post(35, 2, 5, "Why we moved to Kubernetes"),
			monitor: func() model.Monitor {
				m := testMonitor()
				m.Keywords = []string{"kubernetes"}
				return m
			},
		},
	}

	g := New(func() time.Time { return now })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Admit(now, tt.post, tt.monitor())
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			ge, ok := IsGateError(err)
			require.True(t, ok, "expected gate error, got %v", err)
			assert.Equal(t, tt.wantReason, ge.Reason)
		})
	}
}

func TestAdmitSamePostLater(t *testing.T) {
	m := testMonitor()
	published := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	post := model.PostCandidate{Comments: 2, Reactions: 5, PublishedAt: published}

	g := New(nil)

	err := g.Admit(published.Add(10*time.Minute), post, m)
	ge, ok := IsGateError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonPostTooYoung, ge.Reason)

	assert.NoError(t, g.Admit(published.Add(35*time.Minute), post, m))
}

func TestPublishDailyLimit(t *testing.T) {
	m := testMonitor()
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return clock })

	ok := func(context.Context) error { return nil }

	require.NoError(t, g.Publish(context.Background(), m, ok))
	clock = clock.Add(20 * time.Minute)
	require.NoError(t, g.Publish(context.Background(), m, ok))

	clock = clock.Add(20 * time.Minute)
	err := g.Publish(context.Background(), m, ok)
	ge, isGate := IsGateError(err)
	require.True(t, isGate)
	assert.Equal(t, ReasonDailyLimitExceeded, ge.Reason)
}

func TestPublishMinDelay(t *testing.T) {
	m := testMonitor()
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return clock })

	require.NoError(t, g.Publish(context.Background(), m, func(context.Context) error { return nil }))

	clock = clock.Add(5 * time.Minute)
	err := g.Publish(context.Background(), m, func(context.Context) error { return nil })
	ge, isGate := IsGateError(err)
	require.True(t, isGate)
	assert.Equal(t, ReasonMinDelayNotElapsed, ge.Reason)

	clock = clock.Add(10 * time.Minute)
	assert.NoError(t, g.Publish(context.Background(), m, func(context.Context) error { return nil }))
}

func TestPublishFailureIsFree(t *testing.T) {
	m := testMonitor()
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return clock })

	boom := errors.New("upstream down")
	err := g.Publish(context.Background(), m, func(context.Context) error { return boom })
	require.ErrorIs(t, err, boom)

	// Counters were not advanced, so a retry right away is allowed.
	assert.NoError(t, g.Publish(context.Background(), m, func(context.Context) error { return nil }))
}

func TestPublishGateRejectionSkipsFn(t *testing.T) {
	m := testMonitor()
	m.AntiDetection.DailyLimit = 0

	g := New(nil)
	called := false
	err := g.Publish(context.Background(), m, func(context.Context) error {
		called = true
		return nil
	})

	_, isGate := IsGateError(err)
	require.True(t, isGate)
	assert.False(t, called)
}

func TestPublishMidnightReset(t *testing.T) {
	m := testMonitor()
	m.AntiDetection.MinDelayMinutes = 0
	clock := time.Date(2026, 3, 2, 23, 50, 0, 0, time.UTC)
	g := New(func() time.Time { return clock })

	ok := func(context.Context) error { return nil }
	require.NoError(t, g.Publish(context.Background(), m, ok))
	require.NoError(t, g.Publish(context.Background(), m, ok))

	_, isGate := IsGateError(g.Publish(context.Background(), m, ok))
	require.True(t, isGate)

	// Local midnight rolls the day key and resets the count.
	clock = time.Date(2026, 3, 3, 0, 10, 0, 0, time.UTC)
	assert.NoError(t, g.Publish(context.Background(), m, ok))
}

func TestPublishSkipWeekends(t *testing.T) {
	m := testMonitor()
	m.SkipWeekends = true
	m.Timezone = "America/New_York"

	// Saturday 01:00 UTC is still Friday evening in New York.
	clock := time.Date(2026, 3, 7, 1, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return clock })

	ok := func(context.Context) error { return nil }
	require.NoError(t, g.Publish(context.Background(), m, ok))

	// Saturday afternoon local time is refused.
	clock = time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)
	err := g.Publish(context.Background(), m, ok)
	ge, isGate := IsGateError(err)
	require.True(t, isGate)
	assert.Equal(t, ReasonWeekendPaused, ge.Reason)
}

func TestPublishInvalidTimezone(t *testing.T) {
	m := testMonitor()
	m.Timezone = "Mars/Olympus"

	g := New(nil)
	err := g.Publish(context.Background(), m, func(context.Context) error { return nil })
	require.Error(t, err)
	_, isGate := IsGateError(err)
	assert.False(t, isGate)
}

func TestPublishLanesAreIndependent(t *testing.T) {
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return clock })

	var mu sync.Mutex
	counts := map[string]int{}

	var wg sync.WaitGroup
	for _, id := range []string{"mon-a", "mon-b", "mon-c"} {
		m := testMonitor()
		m.ID = id
		m.AntiDetection.MinDelayMinutes = 0
		m.AntiDetection.DailyLimit = 1

		wg.Add(1)
		go func(m model.Monitor) {
			defer wg.Done()
			err := g.Publish(context.Background(), m, func(context.Context) error {
				mu.Lock()
				counts[m.ID]++
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}(m)
	}
	wg.Wait()

	for _, id := range []string{"mon-a", "mon-b", "mon-c"} {
		assert.Equal(t, 1, counts[id])
	}
}

func TestPublishSameLaneSerialized(t *testing.T) {
	m := testMonitor()
	m.AntiDetection.MinDelayMinutes = 0
	m.AntiDetection.DailyLimit = 50

	g := New(nil)

	var inFlight, maxInFlight int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Publish(context.Background(), m, func(context.Context) error {
				mu.Lock()
				inFlight++
				if inFlight > maxInFlight {
					maxInFlight = inFlight
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inFlight--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight, "publish attempts on one lane must not overlap")
}

func TestRebuild(t *testing.T) {
	m := testMonitor()
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return clock })

	g.Rebuild(m.ID, clock.Add(-time.Hour), 2, "2026-03-02")

	_, isGate := IsGateError(g.Publish(context.Background(), m, func(context.Context) error { return nil }))
	require.True(t, isGate, "restored count must keep enforcing the daily limit")
}
