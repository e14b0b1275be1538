package model

import "time"

// TargetMode determines what kind of targets a monitor watches.
type TargetMode string

const (
	TargetModeProfile TargetMode = "PROFILE"
	TargetModeCompany TargetMode = "COMPANY"
	TargetModeHashtag TargetMode = "HASHTAG"
)

// Valid checks the target mode against the known set.
func (m TargetMode) Valid() bool {
	switch m {
	case TargetModeProfile, TargetModeCompany, TargetModeHashtag:
		return true
	}
	return false
}

// MonitorStatus is the lifecycle status of a monitor.
type MonitorStatus string

const (
	MonitorStatusActive MonitorStatus = "ACTIVE"
	MonitorStatusPaused MonitorStatus = "PAUSED"
)

// Valid checks the monitor status against the known set.
func (s MonitorStatus) Valid() bool {
	return s == MonitorStatusActive || s == MonitorStatusPaused
}

// AutoApprove is a local time-of-day window in which candidates skip
// operator review. Start and End are "HH:MM" in the monitor's timezone,
// and Start must not be after End (windows crossing midnight are not
// supported).
type AutoApprove struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AntiDetection holds the admission and pacing thresholds for a monitor.
type AntiDetection struct {
	MinExistingComments int `json:"min_existing_comments"`
	MinPostReactions    int `json:"min_post_reactions"`
	MinPostAgeMinutes   int `json:"min_post_age_minutes"`
	MaxPostAgeHours     int `json:"max_post_age_hours"`
	DailyLimit          int `json:"daily_limit"`
	MinDelayMinutes     int `json:"min_delay_minutes"`
}

// Monitor is a persistent targeting + limits configuration that admits
// candidates. Target values are vanity names, company slugs, or hashtag
// keywords depending on TargetMode, mutually exclusive per monitor.
type Monitor struct {
	ID             string        `json:"id"`
	WorkspaceID    string        `json:"workspace_id"`
	Name           string        `json:"name"`
	TargetMode     TargetMode    `json:"target_mode"`
	TargetValues   []string      `json:"target_values"`
	Keywords       []string      `json:"keywords,omitempty"`
	Status         MonitorStatus `json:"status"`
	Timezone       string        `json:"timezone"`
	DailyStartTime string        `json:"daily_start_time"`
	SkipWeekends   bool          `json:"skip_weekends"`
	AutoApprove    AutoApprove   `json:"auto_approve"`
	AntiDetection  AntiDetection `json:"anti_detection"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
