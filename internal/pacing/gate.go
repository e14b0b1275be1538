// Package pacing enforces the anti-detection rules: an admission prefilter
// on discovered posts and a publish-time re-check of per-monitor daily
// limits and delays. Each monitor is an independent serialization lane;
// publish attempts for the same monitor run strictly one at a time.
package pacing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/friendsofgo/errors"

	"engage-api/internal/model"
)

const dayLayout = "2006-01-02"

// lane holds the mutable pacing state for one monitor. The lane mutex is
// held across the whole publish attempt so the check and the counter
// advance are one atomic step.
type lane struct {
	mu           sync.Mutex
	lastPostedAt time.Time
	countToday   int
	dayKey       string
}

// Gate is the process-wide pacing arena, keyed by monitor ID.
type Gate struct {
	mu    sync.Mutex
	lanes map[string]*lane
	now   func() time.Time
}

// New creates a Gate. A nil clock defaults to time.Now.
func New(now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{
		lanes: make(map[string]*lane),
		now:   now,
	}
}

// Admit checks whether a discovered post may enter the approval queue for
// the given monitor. Rejections come back as *GateError; they are expected
// and carry the reason for operator visibility.
func (g *Gate) Admit(now time.Time, post model.PostCandidate, m model.Monitor) error {
	ad := m.AntiDetection

	age := now.Sub(post.PublishedAt)
	if age < time.Duration(ad.MinPostAgeMinutes)*time.Minute {
		return NewGateError(ReasonPostTooYoung)
	}
	if ad.MaxPostAgeHours > 0 && age > time.Duration(ad.MaxPostAgeHours)*time.Hour {
		return NewGateError(ReasonPostTooOld)
	}
	if post.Comments < ad.MinExistingComments {
		return NewGateError(ReasonNotEnoughComments)
	}
	if post.Reactions < ad.MinPostReactions {
		return NewGateError(ReasonNotEnoughReactions)
	}
	if len(m.Keywords) > 0 && !matchesKeyword(post.Content, m.Keywords) {
		return NewGateError(ReasonKeywordMismatch)
	}
	return nil
}

// Publish serializes a publish attempt on the monitor's lane. It re-checks
// the daily limit and minimum delay, runs fn while holding the lane, and
// advances the counters only when fn succeeds. A *GateError means fn was
// never invoked.
func (g *Gate) Publish(ctx context.Context, m model.Monitor, fn func(context.Context) error) error {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return errors.Wrapf(err, "invalid timezone %q", m.Timezone)
	}

	ln := g.lane(m.ID)
	ln.mu.Lock()
	defer ln.mu.Unlock()

	now := g.now()
	local := now.In(loc)
	if m.SkipWeekends {
		if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return NewGateError(ReasonWeekendPaused)
		}
	}

	day := local.Format(dayLayout)
	if ln.dayKey != day {
		ln.dayKey = day
		ln.countToday = 0
	}

	if ln.countToday >= m.AntiDetection.DailyLimit {
		return NewGateError(ReasonDailyLimitExceeded)
	}
	minDelay := time.Duration(m.AntiDetection.MinDelayMinutes) * time.Minute
	if !ln.lastPostedAt.IsZero() && now.Sub(ln.lastPostedAt) < minDelay {
		return NewGateError(ReasonMinDelayNotElapsed)
	}

	if err := fn(ctx); err != nil {
		return err
	}

	ln.countToday++
	ln.lastPostedAt = g.now()
	return nil
}

// Rebuild restores a lane from persisted history on startup. day is the
// monitor-local "2006-01-02" key countToday was accumulated for.
func (g *Gate) Rebuild(monitorID string, lastPostedAt time.Time, countToday int, day string) {
	ln := g.lane(monitorID)
	ln.mu.Lock()
	defer ln.mu.Unlock()

	ln.lastPostedAt = lastPostedAt
	ln.countToday = countToday
	ln.dayKey = day
}

func (g *Gate) lane(monitorID string) *lane {
	g.mu.Lock()
	defer g.mu.Unlock()

	ln, ok := g.lanes[monitorID]
	if !ok {
		ln = &lane{}
		g.lanes[monitorID] = ln
	}
	return ln
}

func matchesKeyword(content string, keywords []string) bool {
	lowered := strings.ToLower(content)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// IsGateError reports whether err is a gate rejection and returns it.
func IsGateError(err error) (*GateError, bool) {
	var ge *GateError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
