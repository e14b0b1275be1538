package bridge

import (
	"context"
	"net/http"

	"engage-api/internal/model"
	"engage-api/internal/platform"
)

type postCommentRequest struct {
	PostID string `json:"post_id"`
	Text   string `json:"text"`
}

type postCommentResponse struct {
	CommentID string `json:"comment_id"`
	Error     string `json:"error,omitempty"`
}

type engagementResponse struct {
	Likes   int `json:"likes"`
	Replies int `json:"replies"`
}

// PostComment publishes a comment under the given platform post and returns
// the platform comment ID.
func (b *Bridge) PostComment(ctx context.Context, platformPostID, text string) (string, error) {
	req := postCommentRequest{PostID: platformPostID, Text: text}

	var resp postCommentResponse
	if err := b.doJSON(ctx, http.MethodPost, "/v1/comments", req, &resp); err != nil {
		b.l.Errorf(ctx, "internal.platform.bridge.PostComment: %v", err)
		return "", &platform.PublishError{Reason: err.Error()}
	}
	if resp.Error != "" {
		return "", &platform.PublishError{Reason: resp.Error}
	}
	return resp.CommentID, nil
}

// FetchEngagement reads current like/reply counts for a published comment.
func (b *Bridge) FetchEngagement(ctx context.Context, platformCommentID string) (model.Engagement, error) {
	var resp engagementResponse
	if err := b.doJSON(ctx, http.MethodGet, "/v1/comments/"+platformCommentID+"/engagement", nil, &resp); err != nil {
		b.l.Errorf(ctx, "internal.platform.bridge.FetchEngagement: %v", err)
		return model.Engagement{}, err
	}
	return model.Engagement{Likes: resp.Likes, Replies: resp.Replies}, nil
}
