package usecase

import (
	"context"
	"fmt"

	"engage-api/internal/candidate/repository"
	"engage-api/internal/engagement"
	"engage-api/internal/model"
	"engage-api/internal/pacing"
	"engage-api/pkg/discord"
)

// publishApproved runs the publish path for an Approved candidate: the
// publish-time gate, the bounded Publisher call, and the terminal status
// write. Gate rejections and publish failures end up as PostFailed with a
// reason on the candidate, never as a returned error.
func (uc *usecase) publishApproved(ctx context.Context, sc model.Scope, cand model.Candidate, mon model.Monitor) model.Candidate {
	start := uc.clock()

	var commentID string
	err := uc.gate.Publish(ctx, mon, func(ctx context.Context) error {
		cctx, cancel := context.WithTimeout(ctx, uc.publishTimeout)
		defer cancel()

		id, err := uc.publisher.PostComment(cctx, cand.Post.PlatformPostID, cand.CommentText())
		if err != nil {
			return err
		}
		commentID = id
		return nil
	})
	if err != nil {
		uc.m.ObservePublish("failed", uc.clock().Sub(start))
		return uc.markPostFailed(ctx, sc, cand, err)
	}

	now := uc.clock()
	posted, uerr := uc.repo.UpdateDecision(ctx, sc, repository.UpdateDecisionOptions{
		ID:             cand.ID,
		Status:         model.CandidateStatusPosted,
		ExpectedStatus: model.CandidateStatusApproved,
		PostedAt:       &now,
	})
	if uerr != nil {
		// The comment is live; keep the in-memory view consistent and let
		// the operator know the record write needs attention.
		uc.l.Errorf(ctx, "internal.candidate.usecase.publishApproved.repo.UpdateDecision: %v", uerr)
		posted = cand
		posted.Status = model.CandidateStatusPosted
		posted.PostedAt = &now
	}

	uc.m.ObservePublish("posted", now.Sub(start))
	uc.m.ObserveTransition(string(model.CandidateStatusPosted))

	if _, err := uc.engagementUC.Record(ctx, sc, engagement.RecordInput{
		CandidateID:       posted.ID,
		MonitorID:         posted.MonitorID,
		PlatformCommentID: commentID,
		PostedAt:          now,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.publishApproved.engagementUC.Record: %v", err)
	}

	return posted
}

func (uc *usecase) markPostFailed(ctx context.Context, sc model.Scope, cand model.Candidate, cause error) model.Candidate {
	reason := cause.Error()
	if ge, ok := pacing.IsGateError(cause); ok {
		reason = ge.Reason
		uc.m.ObserveGate("publish", "rejected", ge.Reason)
	}

	failed, uerr := uc.repo.UpdateDecision(ctx, sc, repository.UpdateDecisionOptions{
		ID:             cand.ID,
		Status:         model.CandidateStatusPostFailed,
		ExpectedStatus: model.CandidateStatusApproved,
		FailureReason:  &reason,
	})
	if uerr != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.markPostFailed.repo.UpdateDecision: %v", uerr)
		failed = cand
		failed.Status = model.CandidateStatusPostFailed
		failed.FailureReason = &reason
	}
	uc.m.ObserveTransition(string(model.CandidateStatusPostFailed))

	if uc.alert != nil {
		description := fmt.Sprintf("**Candidate**: %s\n**Monitor**: %s\n**Reason**: %s",
			cand.ID, cand.MonitorID, reason)
		if err := uc.alert.Alert(ctx, "Publish failed", description, discord.ColorRed); err != nil {
			uc.l.Warnf(ctx, "internal.candidate.usecase.markPostFailed.alert.Alert: %v", err)
		}
	}

	return failed
}
