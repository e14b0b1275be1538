package scoring

import (
	"testing"
	"time"

	"engage-api/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		post           model.PostCandidate
		wantConfidence model.Confidence
		wantRelevance  int
	}{
		{
			name:           "zero engagement is low",
			post:           model.PostCandidate{},
			wantConfidence: model.ConfidenceLow,
			wantRelevance:  0,
		},
		{
			name:           "weighted total below medium threshold",
			post:           model.PostCandidate{Reactions: 4},
			wantConfidence: model.ConfidenceLow,
			wantRelevance:  4,
		},
		{
			name:           "medium threshold exactly",
			post:           model.PostCandidate{Reactions: 5},
			wantConfidence: model.ConfidenceMedium,
			wantRelevance:  5,
		},
		{
			name:           "comments weigh double for confidence",
			post:           model.PostCandidate{Reactions: 1, Comments: 2},
			wantConfidence: model.ConfidenceMedium,
			wantRelevance:  7,
		},
		{
			name:           "high threshold exactly",
			post:           model.PostCandidate{Reactions: 10, Comments: 5},
			wantConfidence: model.ConfidenceHigh,
			wantRelevance:  25,
		},
		{
			name:           "reposts count toward relevance only",
			post:           model.PostCandidate{Reactions: 4, Reposts: 10},
			wantConfidence: model.ConfidenceLow,
			wantRelevance:  24,
		},
		{
			name:           "relevance capped at 100",
			post:           model.PostCandidate{Reactions: 90, Comments: 20, Reposts: 5},
			wantConfidence: model.ConfidenceHigh,
			wantRelevance:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotConfidence, gotRelevance := Score(tt.post)
			if gotConfidence != tt.wantConfidence {
				t.Errorf("Score() confidence = %v, want %v", gotConfidence, tt.wantConfidence)
			}
			if gotRelevance != tt.wantRelevance {
				t.Errorf("Score() relevance = %v, want %v", gotRelevance, tt.wantRelevance)
			}
		})
	}
}

func TestScoreIdempotent(t *testing.T) {
	post := model.PostCandidate{
		PlatformPostID: "post-1",
		Reactions:      17,
		Comments:       3,
		Reposts:        2,
		PublishedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	c1, r1 := Score(post)
	for i := 0; i < 10; i++ {
		c2, r2 := Score(post)
		if c1 != c2 || r1 != r2 {
			t.Fatalf("Score() not deterministic: (%v, %d) != (%v, %d)", c1, r1, c2, r2)
		}
	}
}
