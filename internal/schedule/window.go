// Package schedule evaluates monitor-local time-of-day windows. All inputs
// are "HH:MM" strings interpreted in the monitor's IANA timezone. Windows
// crossing midnight are not supported; ValidateWindow rejects them so the
// evaluators can assume start <= end.
package schedule

import (
	"time"

	"github.com/friendsofgo/errors"
)

const clockLayout = "15:04"

// ParseClock parses an "HH:MM" time-of-day string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time of day %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateWindow checks that start and end are parseable and that the window
// does not cross midnight.
func ValidateWindow(start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return err
	}
	e, err := ParseClock(end)
	if err != nil {
		return err
	}
	if s > e {
		return errors.Errorf("window %s-%s crosses midnight", start, end)
	}
	return nil
}

// InWindow reports whether now falls inside [start, end] in the given
// timezone. Both bounds are inclusive.
func InWindow(now time.Time, tz, start, end string) (bool, error) {
	cur, err := localMinutes(now, tz)
	if err != nil {
		return false, err
	}
	s, err := ParseClock(start)
	if err != nil {
		return false, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return false, err
	}
	return s <= cur && cur <= e, nil
}

// AfterDailyStart reports whether now is at or past the daily start time in
// the given timezone. An empty start means no restriction.
func AfterDailyStart(now time.Time, tz, start string) (bool, error) {
	if start == "" {
		return true, nil
	}
	cur, err := localMinutes(now, tz)
	if err != nil {
		return false, err
	}
	s, err := ParseClock(start)
	if err != nil {
		return false, err
	}
	return cur >= s, nil
}

// IsWeekend reports whether now is a Saturday or Sunday in the given
// timezone.
func IsWeekend(now time.Time, tz string) (bool, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return false, errors.Wrapf(err, "invalid timezone %q", tz)
	}
	wd := now.In(loc).Weekday()
	return wd == time.Saturday || wd == time.Sunday, nil
}

func localMinutes(now time.Time, tz string) (int, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid timezone %q", tz)
	}
	local := now.In(loc)
	return local.Hour()*60 + local.Minute(), nil
}
