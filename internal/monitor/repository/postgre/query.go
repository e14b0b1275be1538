package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"engage-api/internal/model"
	"engage-api/internal/monitor/repository"
)

const monitorColumns = `id, workspace_id, name, target_mode, target_values, keywords, status,
	timezone, daily_start_time, skip_weekends,
	auto_approve_enabled, auto_approve_start, auto_approve_end,
	min_existing_comments, min_post_reactions, min_post_age_minutes, max_post_age_hours,
	daily_limit, min_delay_minutes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMonitor(row rowScanner) (model.Monitor, error) {
	var m model.Monitor
	err := row.Scan(
		&m.ID,
		&m.WorkspaceID,
		&m.Name,
		&m.TargetMode,
		pq.Array(&m.TargetValues),
		pq.Array(&m.Keywords),
		&m.Status,
		&m.Timezone,
		&m.DailyStartTime,
		&m.SkipWeekends,
		&m.AutoApprove.Enabled,
		&m.AutoApprove.StartTime,
		&m.AutoApprove.EndTime,
		&m.AntiDetection.MinExistingComments,
		&m.AntiDetection.MinPostReactions,
		&m.AntiDetection.MinPostAgeMinutes,
		&m.AntiDetection.MaxPostAgeHours,
		&m.AntiDetection.DailyLimit,
		&m.AntiDetection.MinDelayMinutes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// buildWhere returns the WHERE clause for a scoped filter and its args.
// The workspace predicate always comes first.
func buildWhere(workspaceID string, f repository.Filter) (string, []any) {
	conds := []string{"workspace_id = $1"}
	args := []any{workspaceID}

	if len(f.IDs) > 0 {
		args = append(args, pq.Array(f.IDs))
		conds = append(conds, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}
