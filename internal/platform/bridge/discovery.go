package bridge

import (
	"context"
	"net/http"
	"time"

	"engage-api/internal/model"
)

type fetchPostsRequest struct {
	TargetMode   string   `json:"target_mode"`
	TargetValues []string `json:"target_values"`
}

type fetchPostsResponse struct {
	Posts []wirePost `json:"posts"`
}

type wirePost struct {
	ID             string    `json:"id"`
	AuthorName     string    `json:"author_name"`
	AuthorHeadline string    `json:"author_headline"`
	Content        string    `json:"content"`
	Reactions      int       `json:"reactions"`
	Comments       int       `json:"comments"`
	Reposts        int       `json:"reposts"`
	PublishedAt    time.Time `json:"published_at"`
}

// FetchCandidatePosts polls the upstream worker for recent posts matching
// the monitor's targets.
func (b *Bridge) FetchCandidatePosts(ctx context.Context, m model.Monitor) ([]model.PostCandidate, error) {
	req := fetchPostsRequest{
		TargetMode:   string(m.TargetMode),
		TargetValues: m.TargetValues,
	}

	var resp fetchPostsResponse
	if err := b.doJSON(ctx, http.MethodPost, "/v1/discovery/posts", req, &resp); err != nil {
		b.l.Errorf(ctx, "internal.platform.bridge.FetchCandidatePosts: %v", err)
		return nil, err
	}

	posts := make([]model.PostCandidate, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		posts = append(posts, model.PostCandidate{
			PlatformPostID: p.ID,
			AuthorName:     p.AuthorName,
			AuthorHeadline: p.AuthorHeadline,
			Content:        p.Content,
			Reactions:      p.Reactions,
			Comments:       p.Comments,
			Reposts:        p.Reposts,
			PublishedAt:    p.PublishedAt,
		})
	}
	return posts, nil
}
