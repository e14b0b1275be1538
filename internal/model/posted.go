package model

import "time"

// Engagement is a like/reply snapshot for a published comment.
type Engagement struct {
	Likes   int `json:"likes"`
	Replies int `json:"replies"`
}

// PostedRecord tracks a successfully published comment. Created on publish,
// mutated only by the engagement refresh sweep.
type PostedRecord struct {
	ID                  string     `json:"id"`
	WorkspaceID         string     `json:"workspace_id"`
	CandidateID         string     `json:"candidate_id"`
	MonitorID           string     `json:"monitor_id"`
	PlatformCommentID   string     `json:"platform_comment_id"`
	PostedAt            time.Time  `json:"posted_at"`
	Engagement          Engagement `json:"engagement"`
	EngagementCheckedAt time.Time  `json:"engagement_checked_at"`
}
