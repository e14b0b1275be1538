package usecase

import (
	"context"

	"engage-api/internal/engagement"
	"engage-api/internal/engagement/repository"
	"engage-api/internal/model"
)

func (uc *usecase) Record(ctx context.Context, sc model.Scope, ip engagement.RecordInput) (model.PostedRecord, error) {
	rec, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Record: model.PostedRecord{
			CandidateID:       ip.CandidateID,
			MonitorID:         ip.MonitorID,
			PlatformCommentID: ip.PlatformCommentID,
			PostedAt:          ip.PostedAt,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.engagement.usecase.Record.repo.Create: %v", err)
		return model.PostedRecord{}, err
	}

	return rec, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip engagement.GetInput) (engagement.GetOutput, error) {
	records, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter:        repository.Filter{MonitorID: ip.Filter.MonitorID},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.engagement.usecase.Get.repo.Get: %v", err)
		return engagement.GetOutput{}, err
	}

	return engagement.GetOutput{Records: records, Paginator: pag}, nil
}

// RefreshSweep walks records whose engagement snapshot is older than the
// staleness bound and re-reads their counts from the platform. One bad
// record never aborts the sweep.
func (uc *usecase) RefreshSweep(ctx context.Context, ip engagement.RefreshSweepInput) (engagement.RefreshSweepOutput, error) {
	staleness := ip.MinStaleness
	if staleness <= 0 {
		staleness = uc.minStaleness
	}

	stale, err := uc.repo.ListStale(ctx, uc.clock().Add(-staleness))
	if err != nil {
		uc.l.Errorf(ctx, "internal.engagement.usecase.RefreshSweep.repo.ListStale: %v", err)
		return engagement.RefreshSweepOutput{}, err
	}

	out := engagement.RefreshSweepOutput{Failed: []engagement.RefreshFailure{}}
	for _, rec := range stale {
		eng, err := uc.publisher.FetchEngagement(ctx, rec.PlatformCommentID)
		if err != nil {
			uc.l.Warnf(ctx, "internal.engagement.usecase.RefreshSweep.FetchEngagement: record %s: %v", rec.ID, err)
			out.Failed = append(out.Failed, engagement.RefreshFailure{ID: rec.ID, Reason: err.Error()})
			uc.m.ObserveRefresh("failed")
			continue
		}

		if _, err := uc.repo.UpdateEngagement(ctx, repository.UpdateEngagementOptions{
			ID:         rec.ID,
			Engagement: eng,
			CheckedAt:  uc.clock(),
		}); err != nil {
			uc.l.Errorf(ctx, "internal.engagement.usecase.RefreshSweep.repo.UpdateEngagement: record %s: %v", rec.ID, err)
			out.Failed = append(out.Failed, engagement.RefreshFailure{ID: rec.ID, Reason: err.Error()})
			uc.m.ObserveRefresh("failed")
			continue
		}

		out.Updated++
		uc.m.ObserveRefresh("updated")
	}

	return out, nil
}
