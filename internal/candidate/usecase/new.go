package usecase

import (
	"time"

	"engage-api/internal/candidate"
	"engage-api/internal/candidate/repository"
	"engage-api/internal/engagement"
	monitorRepo "engage-api/internal/monitor/repository"
	"engage-api/internal/pacing"
	"engage-api/internal/platform"
	"engage-api/pkg/discord"
	pkgLog "engage-api/pkg/log"
	"engage-api/pkg/metrics"
)

const defaultPublishTimeout = 45 * time.Second

// Deps bundles the collaborators of the candidate usecase.
type Deps struct {
	Repo         repository.Repository
	MonitorRepo  monitorRepo.Repository
	EngagementUC engagement.UseCase
	Gate         *pacing.Gate
	Discovery    platform.Discovery
	Generator    platform.TextGenerator
	Publisher    platform.Publisher
	Alert        discord.IDiscord
	Metrics      *metrics.Metrics

	PublishTimeout time.Duration
	Style          platform.StyleConfig
}

type usecase struct {
	l              pkgLog.Logger
	repo           repository.Repository
	monitorRepo    monitorRepo.Repository
	engagementUC   engagement.UseCase
	gate           *pacing.Gate
	discovery      platform.Discovery
	generator      platform.TextGenerator
	publisher      platform.Publisher
	alert          discord.IDiscord
	m              *metrics.Metrics
	clock          func() time.Time
	publishTimeout time.Duration
	style          platform.StyleConfig
}

func New(l pkgLog.Logger, deps Deps) candidate.UseCase {
	timeout := deps.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &usecase{
		l:              l,
		repo:           deps.Repo,
		monitorRepo:    deps.MonitorRepo,
		engagementUC:   deps.EngagementUC,
		gate:           deps.Gate,
		discovery:      deps.Discovery,
		generator:      deps.Generator,
		publisher:      deps.Publisher,
		alert:          deps.Alert,
		m:              deps.Metrics,
		clock:          time.Now,
		publishTimeout: timeout,
		style:          deps.Style,
	}
}
