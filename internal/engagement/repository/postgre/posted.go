package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"engage-api/internal/engagement/repository"
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
	postgresPkg "engage-api/pkg/postgre"
)

const postedColumns = `id, workspace_id, candidate_id, monitor_id, platform_comment_id,
	posted_at, likes, replies, engagement_checked_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (model.PostedRecord, error) {
	var rec model.PostedRecord
	err := row.Scan(
		&rec.ID,
		&rec.WorkspaceID,
		&rec.CandidateID,
		&rec.MonitorID,
		&rec.PlatformCommentID,
		&rec.PostedAt,
		&rec.Engagement.Likes,
		&rec.Engagement.Replies,
		&rec.EngagementCheckedAt,
	)
	return rec, err
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.PostedRecord, error) {
	rec := opts.Record
	if rec.ID == "" {
		rec.ID = postgresPkg.NewUUID()
	}
	rec.WorkspaceID = sc.WorkspaceID
	if rec.EngagementCheckedAt.IsZero() {
		rec.EngagementCheckedAt = rec.PostedAt
	}

	query := `INSERT INTO posted_records (` + postedColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.WorkspaceID, rec.CandidateID, rec.MonitorID, rec.PlatformCommentID,
		rec.PostedAt, rec.Engagement.Likes, rec.Engagement.Replies, rec.EngagementCheckedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.engagement.repository.postgres.Create.Exec: %v", err)
		return model.PostedRecord{}, err
	}

	return rec, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.PostedRecord, paginator.Paginator, error) {
	where := "WHERE workspace_id = $1"
	args := []any{sc.WorkspaceID}

	if opts.Filter.MonitorID != "" {
		if err := postgresPkg.IsUUID(opts.Filter.MonitorID); err != nil {
			r.l.Errorf(ctx, "internal.engagement.repository.postgres.Get.IsUUID: %v", err)
			return nil, paginator.Paginator{}, err
		}
		args = append(args, opts.Filter.MonitorID)
		where += fmt.Sprintf(" AND monitor_id = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posted_records `+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.engagement.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	page := opts.PaginateQuery
	page.Adjust()
	query := fmt.Sprintf(`SELECT %s FROM posted_records %s ORDER BY posted_at DESC, id LIMIT %d OFFSET %d`,
		postedColumns, where, page.Limit, page.Offset())

	records, err := r.queryRecords(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.engagement.repository.postgres.Get.Query: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return records, paginator.Paginator{
		Total:       total,
		Count:       int64(len(records)),
		PerPage:     page.Limit,
		CurrentPage: page.Page,
	}, nil
}

func (r *implRepository) ListStale(ctx context.Context, checkedBefore time.Time) ([]model.PostedRecord, error) {
	query := `SELECT ` + postedColumns + ` FROM posted_records
		WHERE engagement_checked_at < $1 ORDER BY engagement_checked_at, id`

	records, err := r.queryRecords(ctx, query, checkedBefore)
	if err != nil {
		r.l.Errorf(ctx, "internal.engagement.repository.postgres.ListStale.Query: %v", err)
		return nil, err
	}
	return records, nil
}

func (r *implRepository) ListAllSince(ctx context.Context, since time.Time) ([]model.PostedRecord, error) {
	query := `SELECT ` + postedColumns + ` FROM posted_records
		WHERE posted_at >= $1 ORDER BY posted_at, id`

	records, err := r.queryRecords(ctx, query, since)
	if err != nil {
		r.l.Errorf(ctx, "internal.engagement.repository.postgres.ListAllSince.Query: %v", err)
		return nil, err
	}
	return records, nil
}

func (r *implRepository) UpdateEngagement(ctx context.Context, opts repository.UpdateEngagementOptions) (model.PostedRecord, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.engagement.repository.postgres.UpdateEngagement.IsUUID: %v", err)
		return model.PostedRecord{}, err
	}

	query := `UPDATE posted_records
		SET likes = $2, replies = $3, engagement_checked_at = $4
		WHERE id = $1
		RETURNING ` + postedColumns

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query,
		opts.ID, opts.Engagement.Likes, opts.Engagement.Replies, opts.CheckedAt,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.PostedRecord{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.engagement.repository.postgres.UpdateEngagement.Scan: %v", err)
		return model.PostedRecord{}, err
	}

	return rec, nil
}

func (r *implRepository) queryRecords(ctx context.Context, query string, args ...any) ([]model.PostedRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.PostedRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
