package bridge

import (
	"context"
	"net/http"

	"engage-api/internal/model"
	"engage-api/internal/platform"
)

type draftRequest struct {
	PostContent    string               `json:"post_content"`
	AuthorName     string               `json:"author_name"`
	AuthorHeadline string               `json:"author_headline,omitempty"`
	TargetMode     string               `json:"target_mode"`
	Style          platform.StyleConfig `json:"style"`
}

type replyRequest struct {
	PostContent     string               `json:"post_content"`
	ExistingComment string               `json:"existing_comment"`
	Style           platform.StyleConfig `json:"style"`
}

type draftResponse struct {
	Text string `json:"text"`
}

// Draft asks the upstream generator for comment text on a post.
func (b *Bridge) Draft(ctx context.Context, post model.PostCandidate, m model.Monitor, style platform.StyleConfig) (string, error) {
	req := draftRequest{
		PostContent:    post.Content,
		AuthorName:     post.AuthorName,
		AuthorHeadline: post.AuthorHeadline,
		TargetMode:     string(m.TargetMode),
		Style:          style,
	}

	var resp draftResponse
	if err := b.doJSON(ctx, http.MethodPost, "/v1/generator/draft", req, &resp); err != nil {
		b.l.Errorf(ctx, "internal.platform.bridge.Draft: %v", err)
		return "", err
	}
	return resp.Text, nil
}

// Reply asks the upstream generator for a reply to an existing comment.
func (b *Bridge) Reply(ctx context.Context, post model.PostCandidate, existingComment string, style platform.StyleConfig) (string, error) {
	req := replyRequest{
		PostContent:     post.Content,
		ExistingComment: existingComment,
		Style:           style,
	}

	var resp draftResponse
	if err := b.doJSON(ctx, http.MethodPost, "/v1/generator/reply", req, &resp); err != nil {
		b.l.Errorf(ctx, "internal.platform.bridge.Reply: %v", err)
		return "", err
	}
	return resp.Text, nil
}
