package http

import (
	"time"

	"engage-api/internal/engagement"
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
)

type getPostedReq struct {
	MonitorID string `form:"monitor_id"`
	paginator.PaginateQuery
}

type refreshReq struct {
	MinStalenessMinutes int `json:"min_staleness_minutes"`
}

type postedResp struct {
	ID                  string    `json:"id"`
	CandidateID         string    `json:"candidate_id"`
	MonitorID           string    `json:"monitor_id"`
	PlatformCommentID   string    `json:"platform_comment_id"`
	PostedAt            time.Time `json:"posted_at"`
	Likes               int       `json:"likes"`
	Replies             int       `json:"replies"`
	EngagementCheckedAt time.Time `json:"engagement_checked_at"`
}

func newPostedResp(rec model.PostedRecord) postedResp {
	return postedResp{
		ID:                  rec.ID,
		CandidateID:         rec.CandidateID,
		MonitorID:           rec.MonitorID,
		PlatformCommentID:   rec.PlatformCommentID,
		PostedAt:            rec.PostedAt,
		Likes:               rec.Engagement.Likes,
		Replies:             rec.Engagement.Replies,
		EngagementCheckedAt: rec.EngagementCheckedAt,
	}
}

type getPostedResp struct {
	Items     []postedResp                `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetPostedResp(out engagement.GetOutput) getPostedResp {
	items := make([]postedResp, len(out.Records))
	for i, rec := range out.Records {
		items[i] = newPostedResp(rec)
	}
	return getPostedResp{
		Items:     items,
		Paginator: out.Paginator.ToResponse(),
	}
}
