package usecase

import (
	"context"

	"engage-api/internal/candidate"
	"engage-api/internal/candidate/repository"
	"engage-api/internal/model"
)

// Get is the read side of the approval queue. Viewing never mutates
// candidate state.
func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip candidate.GetInput) (candidate.GetCandidateOutput, error) {
	switch ip.SortBy {
	case "", candidate.SortConfidence, candidate.SortEngagement, candidate.SortRecency:
	default:
		return candidate.GetCandidateOutput{}, candidate.ErrInvalidSortKey
	}
	if ip.Filter.Confidence != "" && !ip.Filter.Confidence.Valid() {
		return candidate.GetCandidateOutput{}, candidate.ErrInvalidConfidence
	}

	status := ip.Filter.Status
	if status == "" {
		status = model.CandidateStatusPendingApproval
	}

	candidates, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			MonitorID:  ip.Filter.MonitorID,
			Status:     status,
			Confidence: ip.Filter.Confidence,
		},
		SortBy:        ip.SortBy,
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.Get.repo.Get: %v", err)
		return candidate.GetCandidateOutput{}, err
	}

	return candidate.GetCandidateOutput{Candidates: candidates, Paginator: pag}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (candidate.CandidateOutput, error) {
	cand, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return candidate.CandidateOutput{}, candidate.ErrCandidateNotFound
		}
		uc.l.Errorf(ctx, "internal.candidate.usecase.Detail.repo.Detail: %v", err)
		return candidate.CandidateOutput{}, err
	}

	return candidate.CandidateOutput{Candidate: cand}, nil
}
