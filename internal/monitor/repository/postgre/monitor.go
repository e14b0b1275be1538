package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"engage-api/internal/model"
	"engage-api/internal/monitor/repository"
	"engage-api/pkg/paginator"
	postgresPkg "engage-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Monitor, error) {
	m := opts.Monitor
	if m.ID == "" {
		m.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(m.ID); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Create.IsUUID: %v", err)
		return model.Monitor{}, err
	}

	now := r.clock()
	m.WorkspaceID = sc.WorkspaceID
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO monitors (` + monitorColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.WorkspaceID, m.Name, string(m.TargetMode),
		pq.Array(m.TargetValues), pq.Array(m.Keywords), string(m.Status),
		m.Timezone, m.DailyStartTime, m.SkipWeekends,
		m.AutoApprove.Enabled, m.AutoApprove.StartTime, m.AutoApprove.EndTime,
		m.AntiDetection.MinExistingComments, m.AntiDetection.MinPostReactions,
		m.AntiDetection.MinPostAgeMinutes, m.AntiDetection.MaxPostAgeHours,
		m.AntiDetection.DailyLimit, m.AntiDetection.MinDelayMinutes,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Create.Exec: %v", err)
		return model.Monitor{}, err
	}

	return m, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Monitor, error) {
	m := opts.Monitor
	if err := postgresPkg.IsUUID(m.ID); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Update.IsUUID: %v", err)
		return model.Monitor{}, err
	}

	m.UpdatedAt = r.clock()

	query := `UPDATE monitors SET
		name = $3, target_mode = $4, target_values = $5, keywords = $6, status = $7,
		timezone = $8, daily_start_time = $9, skip_weekends = $10,
		auto_approve_enabled = $11, auto_approve_start = $12, auto_approve_end = $13,
		min_existing_comments = $14, min_post_reactions = $15,
		min_post_age_minutes = $16, max_post_age_hours = $17,
		daily_limit = $18, min_delay_minutes = $19, updated_at = $20
		WHERE id = $1 AND workspace_id = $2`

	res, err := r.db.ExecContext(ctx, query,
		m.ID, sc.WorkspaceID,
		m.Name, string(m.TargetMode), pq.Array(m.TargetValues), pq.Array(m.Keywords), string(m.Status),
		m.Timezone, m.DailyStartTime, m.SkipWeekends,
		m.AutoApprove.Enabled, m.AutoApprove.StartTime, m.AutoApprove.EndTime,
		m.AntiDetection.MinExistingComments, m.AntiDetection.MinPostReactions,
		m.AntiDetection.MinPostAgeMinutes, m.AntiDetection.MaxPostAgeHours,
		m.AntiDetection.DailyLimit, m.AntiDetection.MinDelayMinutes,
		m.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Update.Exec: %v", err)
		return model.Monitor{}, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Update.RowsAffected: %v", err)
		return model.Monitor{}, err
	}
	if rows == 0 {
		return model.Monitor{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, m.ID)
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Monitor, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Detail.IsUUID: %v", err)
		return model.Monitor{}, err
	}

	query := `SELECT ` + monitorColumns + ` FROM monitors WHERE id = $1 AND workspace_id = $2`
	m, err := scanMonitor(r.db.QueryRowContext(ctx, query, id, sc.WorkspaceID))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Monitor{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Detail.Scan: %v", err)
		return model.Monitor{}, err
	}

	return m, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Monitor, paginator.Paginator, error) {
	if err := postgresPkg.ValidateUUIDs(opts.Filter.IDs); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Get.ValidateUUIDs: %v", err)
		return nil, paginator.Paginator{}, err
	}

	where, args := buildWhere(sc.WorkspaceID, opts.Filter)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM monitors `+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	page := opts.PaginateQuery
	page.Adjust()
	query := fmt.Sprintf(`SELECT %s FROM monitors %s ORDER BY created_at DESC, id LIMIT %d OFFSET %d`,
		monitorColumns, where, page.Limit, page.Offset())

	monitors, err := r.queryMonitors(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Get.Query: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return monitors, paginator.Paginator{
		Total:       total,
		Count:       int64(len(monitors)),
		PerPage:     page.Limit,
		CurrentPage: page.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Monitor, error) {
	if err := postgresPkg.ValidateUUIDs(opts.Filter.IDs); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.List.ValidateUUIDs: %v", err)
		return nil, err
	}

	where, args := buildWhere(sc.WorkspaceID, opts.Filter)
	query := `SELECT ` + monitorColumns + ` FROM monitors ` + where + ` ORDER BY created_at DESC, id`

	monitors, err := r.queryMonitors(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.List.Query: %v", err)
		return nil, err
	}
	return monitors, nil
}

// ListAllActive returns active monitors across all workspaces. Used by the
// intake sweep and the pacing state rebuild, which run outside a caller
// scope.
func (r *implRepository) ListAllActive(ctx context.Context) ([]model.Monitor, error) {
	query := `SELECT ` + monitorColumns + ` FROM monitors WHERE status = $1 ORDER BY created_at, id`

	monitors, err := r.queryMonitors(ctx, query, string(model.MonitorStatusActive))
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListAllActive.Query: %v", err)
		return nil, err
	}
	return monitors, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	// The pending-candidate guard rides in the same statement so the check
	// and the delete cannot be split by a concurrent intake.
	query := `DELETE FROM monitors
		WHERE id = $1 AND workspace_id = $2
		AND NOT EXISTS (
			SELECT 1 FROM candidates
			WHERE monitor_id = monitors.id AND status = $3
		)`

	res, err := r.db.ExecContext(ctx, query, id, sc.WorkspaceID, string(model.CandidateStatusPendingApproval))
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) queryMonitors(ctx context.Context, query string, args ...any) ([]model.Monitor, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var monitors []model.Monitor
	for rows.Next() {
		m, err := scanMonitor(rows)
		if err != nil {
			return nil, err
		}
		monitors = append(monitors, m)
	}
	return monitors, rows.Err()
}
