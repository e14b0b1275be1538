package model

import "time"

// Confidence classifies how strong an engagement opportunity a candidate is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Valid checks the confidence against the known set.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Rank returns a sortable rank, higher is better.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// CandidateStatus is the lifecycle status of a candidate.
type CandidateStatus string

const (
	CandidateStatusPendingApproval CandidateStatus = "PENDING_APPROVAL"
	CandidateStatusApproved        CandidateStatus = "APPROVED"
	CandidateStatusRejected        CandidateStatus = "REJECTED"
	CandidateStatusPosted          CandidateStatus = "POSTED"
	CandidateStatusPostFailed      CandidateStatus = "POST_FAILED"
)

// Valid checks the candidate status against the known set.
func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusPendingApproval, CandidateStatusApproved,
		CandidateStatusRejected, CandidateStatusPosted, CandidateStatusPostFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s CandidateStatus) Terminal() bool {
	switch s {
	case CandidateStatusRejected, CandidateStatusPosted, CandidateStatusPostFailed:
		return true
	}
	return false
}

// PostCandidate is a discovered platform post, immutable once ingested.
type PostCandidate struct {
	PlatformPostID string    `json:"platform_post_id"`
	AuthorName     string    `json:"author_name"`
	AuthorHeadline string    `json:"author_headline,omitempty"`
	Content        string    `json:"content"`
	Reactions      int       `json:"reactions"`
	Comments       int       `json:"comments"`
	Reposts        int       `json:"reposts"`
	PublishedAt    time.Time `json:"published_at"`
}

// Candidate is a post + generated comment pair under lifecycle management.
type Candidate struct {
	ID             string          `json:"id"`
	WorkspaceID    string          `json:"workspace_id"`
	MonitorID      string          `json:"monitor_id"`
	Post           PostCandidate   `json:"post"`
	GeneratedText  string          `json:"generated_text"`
	EditedText     *string         `json:"edited_text,omitempty"`
	Confidence     Confidence      `json:"confidence"`
	RelevanceScore int             `json:"relevance_score"`
	Status         CandidateStatus `json:"status"`
	FailureReason  *string         `json:"failure_reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	DecidedAt      *time.Time      `json:"decided_at,omitempty"`
	PostedAt       *time.Time      `json:"posted_at,omitempty"`
}

// CommentText returns the text to publish: an operator edit wins over the
// generated text.
func (c Candidate) CommentText() string {
	if c.EditedText != nil && *c.EditedText != "" {
		return *c.EditedText
	}
	return c.GeneratedText
}
