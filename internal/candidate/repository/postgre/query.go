package postgres

import (
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"

	"engage-api/internal/candidate"
	"engage-api/internal/candidate/repository"
	"engage-api/internal/model"
)

const candidateColumns = `id, workspace_id, monitor_id, platform_post_id, author_name, author_headline,
	post_content, reactions, comments, reposts, post_published_at,
	generated_text, edited_text, confidence, relevance_score, status, failure_reason,
	created_at, decided_at, posted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (model.Candidate, error) {
	var (
		c             model.Candidate
		editedText    null.String
		failureReason null.String
		decidedAt     null.Time
		postedAt      null.Time
	)

	err := row.Scan(
		&c.ID,
		&c.WorkspaceID,
		&c.MonitorID,
		&c.Post.PlatformPostID,
		&c.Post.AuthorName,
		&c.Post.AuthorHeadline,
		&c.Post.Content,
		&c.Post.Reactions,
		&c.Post.Comments,
		&c.Post.Reposts,
		&c.Post.PublishedAt,
		&c.GeneratedText,
		&editedText,
		&c.Confidence,
		&c.RelevanceScore,
		&c.Status,
		&failureReason,
		&c.CreatedAt,
		&decidedAt,
		&postedAt,
	)
	if err != nil {
		return model.Candidate{}, err
	}

	c.EditedText = editedText.Ptr()
	c.FailureReason = failureReason.Ptr()
	c.DecidedAt = decidedAt.Ptr()
	c.PostedAt = postedAt.Ptr()
	return c, nil
}

func buildWhere(workspaceID string, f repository.Filter) (string, []any) {
	conds := []string{"workspace_id = $1"}
	args := []any{workspaceID}

	if len(f.IDs) > 0 {
		args = append(args, pq.Array(f.IDs))
		conds = append(conds, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	if f.MonitorID != "" {
		args = append(args, f.MonitorID)
		conds = append(conds, fmt.Sprintf("monitor_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Confidence != "" {
		args = append(args, string(f.Confidence))
		conds = append(conds, fmt.Sprintf("confidence = $%d", len(args)))
	}
	if f.MinConfidence != "" {
		conds = append(conds, fmt.Sprintf("%s >= %d", confidenceRankExpr, f.MinConfidence.Rank()))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

const confidenceRankExpr = `(CASE confidence WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END)`

// orderBy maps a queue sort key to a deterministic ORDER BY clause. The id
// tiebreak keeps pagination stable when every other key is equal.
func orderBy(sortBy string) string {
	switch sortBy {
	case candidate.SortConfidence:
		return confidenceRankExpr + " DESC, created_at DESC, id"
	case candidate.SortEngagement:
		return "(reactions + comments + reposts) DESC, created_at DESC, id"
	case repository.SortOldestFirst:
		return "created_at, id"
	default:
		return "created_at DESC, id"
	}
}
