package usecase

import (
	"context"
	"time"

	"engage-api/internal/candidate"
	"engage-api/internal/candidate/repository"
	"engage-api/internal/model"
	monitorRepo "engage-api/internal/monitor/repository"
	"engage-api/internal/pacing"
	"engage-api/internal/schedule"
	"engage-api/internal/scoring"
)

func (uc *usecase) Intake(ctx context.Context, sc model.Scope) (candidate.IntakeOutput, error) {
	monitors, err := uc.monitorRepo.List(ctx, sc, monitorRepo.ListOptions{
		Filter: monitorRepo.Filter{Status: model.MonitorStatusActive},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.Intake.monitorRepo.List: %v", err)
		return candidate.IntakeOutput{}, err
	}

	out := candidate.IntakeOutput{Failed: []candidate.IntakeFailure{}}
	for _, mon := range monitors {
		uc.intakeMonitor(ctx, sc, mon, &out)
	}

	return out, nil
}

// intakeMonitor sweeps one monitor. Discovery or generation problems are
// collected on the output; they never abort the sweep.
func (uc *usecase) intakeMonitor(ctx context.Context, sc model.Scope, mon model.Monitor, out *candidate.IntakeOutput) {
	now := uc.clock()

	if mon.SkipWeekends {
		weekend, err := schedule.IsWeekend(now, mon.Timezone)
		if err != nil {
			out.Failed = append(out.Failed, candidate.IntakeFailure{MonitorID: mon.ID, Reason: err.Error()})
			return
		}
		if weekend {
			return
		}
	}

	started, err := schedule.AfterDailyStart(now, mon.Timezone, mon.DailyStartTime)
	if err != nil {
		out.Failed = append(out.Failed, candidate.IntakeFailure{MonitorID: mon.ID, Reason: err.Error()})
		return
	}
	if !started {
		return
	}

	posts, err := uc.discovery.FetchCandidatePosts(ctx, mon)
	if err != nil {
		uc.l.Warnf(ctx, "internal.candidate.usecase.intakeMonitor.FetchCandidatePosts: monitor %s: %v", mon.ID, err)
		out.Failed = append(out.Failed, candidate.IntakeFailure{MonitorID: mon.ID, Reason: err.Error()})
		return
	}

	for _, post := range posts {
		uc.intakePost(ctx, sc, mon, post, out)
	}
}

func (uc *usecase) intakePost(ctx context.Context, sc model.Scope, mon model.Monitor, post model.PostCandidate, out *candidate.IntakeOutput) {
	now := uc.clock()

	if err := uc.gate.Admit(now, post, mon); err != nil {
		if ge, ok := isGateErr(err); ok {
			uc.m.ObserveGate("admission", "rejected", ge)
		}
		out.Skipped++
		return
	}
	uc.m.ObserveGate("admission", "admitted", "")

	exists, err := uc.repo.ExistsByPost(ctx, sc, mon.ID, post.PlatformPostID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.intakePost.repo.ExistsByPost: %v", err)
		out.Failed = append(out.Failed, candidate.IntakeFailure{
			MonitorID: mon.ID, PlatformPostID: post.PlatformPostID, Reason: err.Error(),
		})
		return
	}
	if exists {
		out.Skipped++
		return
	}

	text, err := uc.generator.Draft(ctx, post, mon, uc.style)
	if err != nil {
		uc.l.Warnf(ctx, "internal.candidate.usecase.intakePost.generator.Draft: %v", err)
		out.Failed = append(out.Failed, candidate.IntakeFailure{
			MonitorID: mon.ID, PlatformPostID: post.PlatformPostID, Reason: err.Error(),
		})
		return
	}

	confidence, relevance := scoring.Score(post)
	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Candidate: model.Candidate{
			MonitorID:      mon.ID,
			Post:           post,
			GeneratedText:  text,
			Confidence:     confidence,
			RelevanceScore: relevance,
			Status:         model.CandidateStatusPendingApproval,
			CreatedAt:      now,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.candidate.usecase.intakePost.repo.Create: %v", err)
		out.Failed = append(out.Failed, candidate.IntakeFailure{
			MonitorID: mon.ID, PlatformPostID: post.PlatformPostID, Reason: err.Error(),
		})
		return
	}
	uc.m.ObserveTransition(string(model.CandidateStatusPendingApproval))
	out.Admitted++

	if uc.shouldAutoApprove(ctx, mon, now) {
		decidedAt := uc.clock()
		approved, err := uc.repo.UpdateDecision(ctx, sc, repository.UpdateDecisionOptions{
			ID:             created.ID,
			Status:         model.CandidateStatusApproved,
			ExpectedStatus: model.CandidateStatusPendingApproval,
			DecidedAt:      &decidedAt,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.candidate.usecase.intakePost.repo.UpdateDecision: %v", err)
			return
		}
		uc.m.ObserveTransition(string(model.CandidateStatusApproved))
		uc.publishApproved(ctx, sc, approved, mon)
		out.AutoApproved++
	}
}

func (uc *usecase) shouldAutoApprove(ctx context.Context, mon model.Monitor, now time.Time) bool {
	if !mon.AutoApprove.Enabled {
		return false
	}
	in, err := schedule.InWindow(now, mon.Timezone, mon.AutoApprove.StartTime, mon.AutoApprove.EndTime)
	if err != nil {
		uc.l.Warnf(ctx, "internal.candidate.usecase.shouldAutoApprove.InWindow: monitor %s: %v", mon.ID, err)
		return false
	}
	return in
}

func isGateErr(err error) (string, bool) {
	if ge, ok := pacing.IsGateError(err); ok {
		return ge.Reason, true
	}
	return "", false
}
