package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"engage-api/internal/candidate/repository"
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
	postgresPkg "engage-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Candidate, error) {
	c := opts.Candidate
	if c.ID == "" {
		c.ID = postgresPkg.NewUUID()
	}
	c.WorkspaceID = sc.WorkspaceID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.clock()
	}

	query := `INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.WorkspaceID, c.MonitorID, c.Post.PlatformPostID, c.Post.AuthorName, c.Post.AuthorHeadline,
		c.Post.Content, c.Post.Reactions, c.Post.Comments, c.Post.Reposts, c.Post.PublishedAt,
		c.GeneratedText, c.EditedText, string(c.Confidence), c.RelevanceScore, string(c.Status), c.FailureReason,
		c.CreatedAt, c.DecidedAt, c.PostedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.Create.Exec: %v", err)
		return model.Candidate{}, err
	}

	return c, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Candidate, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.Detail.IsUUID: %v", err)
		return model.Candidate{}, err
	}

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1 AND workspace_id = $2`
	c, err := scanCandidate(r.db.QueryRowContext(ctx, query, id, sc.WorkspaceID))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Candidate{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.Detail.Scan: %v", err)
		return model.Candidate{}, err
	}

	return c, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Candidate, paginator.Paginator, error) {
	if err := postgresPkg.ValidateUUIDs(opts.Filter.IDs); err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.Get.ValidateUUIDs: %v", err)
		return nil, paginator.Paginator{}, err
	}

	where, args := buildWhere(sc.WorkspaceID, opts.Filter)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates `+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	page := opts.PaginateQuery
	page.Adjust()
	query := fmt.Sprintf(`SELECT %s FROM candidates %s ORDER BY %s LIMIT %d OFFSET %d`,
		candidateColumns, where, orderBy(opts.SortBy), page.Limit, page.Offset())

	candidates, err := r.queryCandidates(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.Get.Query: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return candidates, paginator.Paginator{
		Total:       total,
		Count:       int64(len(candidates)),
		PerPage:     page.Limit,
		CurrentPage: page.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Candidate, error) {
	if err := postgresPkg.ValidateUUIDs(opts.Filter.IDs); err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.List.ValidateUUIDs: %v", err)
		return nil, err
	}

	where, args := buildWhere(sc.WorkspaceID, opts.Filter)
	query := `SELECT ` + candidateColumns + ` FROM candidates ` + where + ` ORDER BY ` + orderBy(opts.SortBy)

	candidates, err := r.queryCandidates(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.List.Query: %v", err)
		return nil, err
	}
	return candidates, nil
}

func (r *implRepository) UpdateDecision(ctx context.Context, sc model.Scope, opts repository.UpdateDecisionOptions) (model.Candidate, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.UpdateDecision.IsUUID: %v", err)
		return model.Candidate{}, err
	}

	sets := []string{"status = $3"}
	args := []any{opts.ID, sc.WorkspaceID, string(opts.Status)}

	if opts.EditedText != nil {
		args = append(args, *opts.EditedText)
		sets = append(sets, fmt.Sprintf("edited_text = $%d", len(args)))
	}
	if opts.FailureReason != nil {
		args = append(args, *opts.FailureReason)
		sets = append(sets, fmt.Sprintf("failure_reason = $%d", len(args)))
	}
	if opts.DecidedAt != nil {
		args = append(args, *opts.DecidedAt)
		sets = append(sets, fmt.Sprintf("decided_at = $%d", len(args)))
	}
	if opts.PostedAt != nil {
		args = append(args, *opts.PostedAt)
		sets = append(sets, fmt.Sprintf("posted_at = $%d", len(args)))
	}

	where := "id = $1 AND workspace_id = $2"
	if opts.ExpectedStatus != "" {
		args = append(args, string(opts.ExpectedStatus))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE %s RETURNING %s`,
		strings.Join(sets, ", "), where, candidateColumns)

	c, err := scanCandidate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Candidate{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.UpdateDecision.Scan: %v", err)
		return model.Candidate{}, err
	}

	return c, nil
}

func (r *implRepository) ExistsByPost(ctx context.Context, sc model.Scope, monitorID, platformPostID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM candidates WHERE workspace_id = $1 AND monitor_id = $2 AND platform_post_id = $3
	)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, sc.WorkspaceID, monitorID, platformPostID).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.ExistsByPost.Scan: %v", err)
		return false, err
	}

	return exists, nil
}

func (r *implRepository) ExistsPendingForMonitor(ctx context.Context, sc model.Scope, monitorID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM candidates WHERE workspace_id = $1 AND monitor_id = $2 AND status = $3
	)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, sc.WorkspaceID, monitorID,
		string(model.CandidateStatusPendingApproval)).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "internal.candidate.repository.postgres.ExistsPendingForMonitor.Scan: %v", err)
		return false, err
	}

	return exists, nil
}

func (r *implRepository) queryCandidates(ctx context.Context, query string, args ...any) ([]model.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []model.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
