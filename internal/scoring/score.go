package scoring

import "engage-api/internal/model"

// Weighting constants. Comments and reposts are stronger relevance signals
// than passive reactions.
const (
	commentWeight = 3
	repostWeight  = 2

	maxRelevance = 100

	highThreshold   = 20
	mediumThreshold = 5
)

// Score computes the confidence classification and relevance score for a
// discovered post. It is deterministic and side-effect free: the same input
// always yields the same output, which keeps approval queue ordering stable
// across re-scores.
func Score(post model.PostCandidate) (model.Confidence, int) {
	relevance := post.Reactions + commentWeight*post.Comments + repostWeight*post.Reposts
	if relevance > maxRelevance {
		relevance = maxRelevance
	}

	weighted := post.Reactions + 2*post.Comments
	switch {
	case weighted >= highThreshold:
		return model.ConfidenceHigh, relevance
	case weighted >= mediumThreshold:
		return model.ConfidenceMedium, relevance
	default:
		return model.ConfidenceLow, relevance
	}
}
