package platform

import (
	"context"

	"engage-api/internal/model"
)

// Discovery polls the platform for fresh posts matching a monitor's
// targeting.
type Discovery interface {
	FetchCandidatePosts(ctx context.Context, m model.Monitor) ([]model.PostCandidate, error)
}

// TextGenerator drafts comment text for a post.
type TextGenerator interface {
	Draft(ctx context.Context, post model.PostCandidate, m model.Monitor, style StyleConfig) (string, error)
	Reply(ctx context.Context, post model.PostCandidate, existingComment string, style StyleConfig) (string, error)
}

// Publisher writes comments to the platform and reads back their
// engagement.
type Publisher interface {
	PostComment(ctx context.Context, platformPostID, text string) (string, error)
	FetchEngagement(ctx context.Context, platformCommentID string) (model.Engagement, error)
}
