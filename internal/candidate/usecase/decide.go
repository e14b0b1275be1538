package usecase

import (
	"context"

	"engage-api/internal/candidate"
	"engage-api/internal/candidate/repository"
	"engage-api/internal/model"
)

// Approve transitions a pending candidate to Approved and synchronously
// attempts the publish. The returned candidate reflects the publish
// outcome: Posted, or PostFailed with the gate or publisher reason.
func (uc *usecase) Approve(ctx context.Context, sc model.Scope, ip candidate.ApproveInput) (candidate.CandidateOutput, error) {
	if !sc.CanDecide() {
		return candidate.CandidateOutput{}, candidate.ErrForbidden
	}

	final, _, err := uc.approveOne(ctx, sc, ip.ID, ip.EditedText)
	if err != nil {
		return candidate.CandidateOutput{}, err
	}

	return candidate.CandidateOutput{Candidate: final}, nil
}

func (uc *usecase) Reject(ctx context.Context, sc model.Scope, id string) (candidate.CandidateOutput, error) {
	if !sc.CanDecide() {
		return candidate.CandidateOutput{}, candidate.ErrForbidden
	}

	cand, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return candidate.CandidateOutput{}, candidate.ErrCandidateNotFound
		}
		uc.l.Errorf(ctx, "internal.candidate.usecase.Reject.repo.Detail: %v", err)
		return candidate.CandidateOutput{}, err
	}

	if cand.Status != model.CandidateStatusPendingApproval {
		return candidate.CandidateOutput{}, candidate.ErrAlreadyDecided
	}

	now := uc.clock()
	rejected, err := uc.repo.UpdateDecision(ctx, sc, repository.UpdateDecisionOptions{
		ID:             cand.ID,
		Status:         model.CandidateStatusRejected,
		ExpectedStatus: model.CandidateStatusPendingApproval,
		DecidedAt:      &now,
	})
	if err != nil {
		// Zero rows on a guarded write means a concurrent decision won.
		if err == repository.ErrNotFound {
			return candidate.CandidateOutput{}, candidate.ErrAlreadyDecided
		}
		uc.l.Errorf(ctx, "internal.candidate.usecase.Reject.repo.UpdateDecision: %v", err)
		return candidate.CandidateOutput{}, err
	}
	uc.m.ObserveTransition(string(model.CandidateStatusRejected))

	return candidate.CandidateOutput{Candidate: rejected}, nil
}

// BulkApprove processes ids strictly in submission order. Later items may
// fail the pacing gate because earlier ones consumed the budget; those come
// back in Failed with the gate reason.
func (uc *usecase) BulkApprove(ctx context.Context, sc model.Scope, ip candidate.BulkApproveInput) (candidate.BulkApproveOutput, error) {
	if !sc.CanDecide() {
		return candidate.BulkApproveOutput{}, candidate.ErrForbidden
	}

	out := candidate.BulkApproveOutput{
		Succeeded: []string{},
		Failed:    []candidate.BulkFailure{},
	}

	for _, id := range ip.IDs {
		final, reason, err := uc.approveOne(ctx, sc, id, nil)
		switch {
		case err == candidate.ErrCandidateNotFound:
			out.Failed = append(out.Failed, candidate.BulkFailure{ID: id, Reason: "not_found"})
		case err == candidate.ErrAlreadyDecided:
			out.Failed = append(out.Failed, candidate.BulkFailure{ID: id, Reason: "already_decided"})
		case err != nil:
			out.Failed = append(out.Failed, candidate.BulkFailure{ID: id, Reason: err.Error()})
		case final.Status == model.CandidateStatusPosted:
			out.Succeeded = append(out.Succeeded, id)
		default:
			out.Failed = append(out.Failed, candidate.BulkFailure{ID: id, Reason: reason})
		}
	}

	return out, nil
}

// ApproveAllAboveConfidence bulk-approves every pending candidate at or
// above the threshold, oldest first.
func (uc *usecase) ApproveAllAboveConfidence(ctx context.Context, sc model.Scope, ip candidate.ApproveAboveInput) (candidate.BulkApproveOutput, error) {
	if !sc.CanDecide() {
		return candidate.BulkApproveOutput{}, candidate.ErrForbidden
	}
	if !ip.Threshold.Valid() {
		return candidate.BulkApproveOutput{}, candidate.ErrInvalidConfidence
	}

	pending, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			Status:        model.CandidateStatusPendingApproval,
			MinConfidence: ip.Threshold,
		},
		SortBy: repository.SortOldestFirst,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.ApproveAllAboveConfidence.repo.List: %v", err)
		return candidate.BulkApproveOutput{}, err
	}

	ids := make([]string, len(pending))
	for i, c := range pending {
		ids[i] = c.ID
	}

	return uc.BulkApprove(ctx, sc, candidate.BulkApproveInput{IDs: ids})
}

// approveOne is the shared approve+publish step. It returns the final
// candidate and, when the publish did not stick, the failure reason.
func (uc *usecase) approveOne(ctx context.Context, sc model.Scope, id string, editedText *string) (model.Candidate, string, error) {
	cand, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Candidate{}, "", candidate.ErrCandidateNotFound
		}
		uc.l.Errorf(ctx, "internal.candidate.usecase.approveOne.repo.Detail: %v", err)
		return model.Candidate{}, "", err
	}

	if cand.Status != model.CandidateStatusPendingApproval {
		return model.Candidate{}, "", candidate.ErrAlreadyDecided
	}

	// The monitor is loaded before any transition so a repository outage
	// surfaces to the caller and the candidate stays pending.
	mon, err := uc.monitorRepo.Detail(ctx, sc, cand.MonitorID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.approveOne.monitorRepo.Detail: %v", err)
		return model.Candidate{}, "", err
	}

	now := uc.clock()
	approved, err := uc.repo.UpdateDecision(ctx, sc, repository.UpdateDecisionOptions{
		ID:             cand.ID,
		Status:         model.CandidateStatusApproved,
		ExpectedStatus: model.CandidateStatusPendingApproval,
		EditedText:     editedText,
		DecidedAt:      &now,
	})
	if err != nil {
		// Zero rows on a guarded write means a concurrent decision won.
		if err == repository.ErrNotFound {
			return model.Candidate{}, "", candidate.ErrAlreadyDecided
		}
		uc.l.Errorf(ctx, "internal.candidate.usecase.approveOne.repo.UpdateDecision: %v", err)
		return model.Candidate{}, "", err
	}
	uc.m.ObserveTransition(string(model.CandidateStatusApproved))

	final := uc.publishApproved(ctx, sc, approved, mon)

	reason := ""
	if final.Status == model.CandidateStatusPostFailed && final.FailureReason != nil {
		reason = *final.FailureReason
	}
	return final, reason, nil
}
