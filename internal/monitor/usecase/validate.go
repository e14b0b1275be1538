package usecase

import (
	"time"

	"engage-api/internal/model"
	"engage-api/internal/monitor"
	"engage-api/internal/schedule"
	pkgErrors "engage-api/pkg/errors"
)

const (
	maxProfileTargets = 30
	maxCompanyTargets = 30
	maxHashtagTargets = 10

	minDailyLimit = 1
	maxDailyLimit = 200

	maxMinDelayMinutes = 24 * 60
	maxPostAgeHoursCap = 7 * 24
)

// validateConfig checks a monitor config before persistence. All problems
// are collected so the operator sees them in one round trip.
func validateConfig(cfg monitor.Config) error {
	col := pkgErrors.NewValidationErrorCollector()

	if cfg.Name == "" {
		col.Add(pkgErrors.NewValidationError(1, "name", "must not be empty"))
	}

	if !cfg.TargetMode.Valid() {
		col.Add(pkgErrors.NewValidationError(2, "target_mode", "must be PROFILE, COMPANY or HASHTAG"))
	} else {
		validateTargets(col, cfg.TargetMode, cfg.TargetValues)
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		col.Add(pkgErrors.NewValidationError(4, "timezone", "unknown IANA timezone"))
	}

	if cfg.DailyStartTime != "" {
		if _, err := schedule.ParseClock(cfg.DailyStartTime); err != nil {
			col.Add(pkgErrors.NewValidationError(5, "daily_start_time", "must be HH:MM"))
		}
	}

	if cfg.AutoApprove.Enabled {
		if err := schedule.ValidateWindow(cfg.AutoApprove.StartTime, cfg.AutoApprove.EndTime); err != nil {
			col.Add(pkgErrors.NewValidationError(6, "auto_approve", err.Error()))
		}
	}

	validateAntiDetection(col, cfg.AntiDetection)

	if col.HasError() {
		return col
	}
	return nil
}

func validateTargets(col *pkgErrors.ValidationErrorCollector, mode model.TargetMode, values []string) {
	if len(values) == 0 {
		col.Add(pkgErrors.NewValidationError(3, "target_values", "must not be empty"))
		return
	}

	limit := maxProfileTargets
	switch mode {
	case model.TargetModeCompany:
		limit = maxCompanyTargets
	case model.TargetModeHashtag:
		limit = maxHashtagTargets
	}
	if len(values) > limit {
		col.Add(pkgErrors.NewValidationError(3, "target_values", "too many targets for mode"))
	}

	for _, v := range values {
		if v == "" {
			col.Add(pkgErrors.NewValidationError(3, "target_values", "entries must not be empty"))
			break
		}
	}
}

func validateAntiDetection(col *pkgErrors.ValidationErrorCollector, ad model.AntiDetection) {
	if ad.DailyLimit < minDailyLimit || ad.DailyLimit > maxDailyLimit {
		col.Add(pkgErrors.NewValidationError(7, "anti_detection.daily_limit", "must be between 1 and 200"))
	}
	if ad.MinDelayMinutes < 0 || ad.MinDelayMinutes > maxMinDelayMinutes {
		col.Add(pkgErrors.NewValidationError(8, "anti_detection.min_delay_minutes", "must be between 0 and 1440"))
	}
	if ad.MinExistingComments < 0 {
		col.Add(pkgErrors.NewValidationError(9, "anti_detection.min_existing_comments", "must not be negative"))
	}
	if ad.MinPostReactions < 0 {
		col.Add(pkgErrors.NewValidationError(10, "anti_detection.min_post_reactions", "must not be negative"))
	}
	if ad.MinPostAgeMinutes < 0 {
		col.Add(pkgErrors.NewValidationError(11, "anti_detection.min_post_age_minutes", "must not be negative"))
	}
	if ad.MaxPostAgeHours < 0 || ad.MaxPostAgeHours > maxPostAgeHoursCap {
		col.Add(pkgErrors.NewValidationError(12, "anti_detection.max_post_age_hours", "must be between 0 and 168"))
	}
	if ad.MaxPostAgeHours > 0 && ad.MinPostAgeMinutes > ad.MaxPostAgeHours*60 {
		col.Add(pkgErrors.NewValidationError(13, "anti_detection", "min post age exceeds max post age"))
	}
}
