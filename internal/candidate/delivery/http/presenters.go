package http

import (
	"time"

	"engage-api/internal/candidate"
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

type getCandidatesReq struct {
	MonitorID  string `form:"monitor_id"`
	Confidence string `form:"confidence"`
	Status     string `form:"status"`
	SortBy     string `form:"sort_by"`
	paginator.PaginateQuery
}

type approveReq struct {
	EditedText *string `json:"edited_text"`
}

type bulkApproveReq struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type approveAboveReq struct {
	Threshold string `json:"confidence" binding:"required"`
}

type postResp struct {
	PlatformPostID string    `json:"platform_post_id"`
	AuthorName     string    `json:"author_name"`
	AuthorHeadline string    `json:"author_headline,omitempty"`
	Content        string    `json:"content"`
	Reactions      int       `json:"reactions"`
	Comments       int       `json:"comments"`
	Reposts        int       `json:"reposts"`
	PublishedAt    time.Time `json:"published_at"`
}

type candidateResp struct {
	ID             string     `json:"id"`
	MonitorID      string     `json:"monitor_id"`
	Post           postResp   `json:"post"`
	GeneratedText  string     `json:"generated_text"`
	EditedText     *string    `json:"edited_text,omitempty"`
	Confidence     string     `json:"confidence"`
	RelevanceScore int        `json:"relevance_score"`
	Status         string     `json:"status"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	PostedAt       *time.Time `json:"posted_at,omitempty"`
}

func newCandidateResp(c model.Candidate) candidateResp {
	return candidateResp{
		ID:        c.ID,
		MonitorID: c.MonitorID,
		Post: postResp{
			PlatformPostID: c.Post.PlatformPostID,
			AuthorName:     c.Post.AuthorName,
			AuthorHeadline: c.Post.AuthorHeadline,
			Content:        c.Post.Content,
			Reactions:      c.Post.Reactions,
			Comments:       c.Post.Comments,
			Reposts:        c.Post.Reposts,
			PublishedAt:    c.Post.PublishedAt,
		},
		GeneratedText:  c.GeneratedText,
		EditedText:     c.EditedText,
		Confidence:     string(c.Confidence),
		RelevanceScore: c.RelevanceScore,
		Status:         string(c.Status),
		FailureReason:  c.FailureReason,
		CreatedAt:      c.CreatedAt,
		DecidedAt:      c.DecidedAt,
		PostedAt:       c.PostedAt,
	}
}

type getCandidatesResp struct {
	Items     []candidateResp             `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetCandidatesResp(out candidate.GetCandidateOutput) getCandidatesResp {
	items := make([]candidateResp, len(out.Candidates))
	for i, c := range out.Candidates {
		items[i] = newCandidateResp(c)
	}
	return getCandidatesResp{
		Items:     items,
		Paginator: out.Paginator.ToResponse(),
	}
}
