package usecase

import (
	"time"

	"engage-api/internal/engagement"
	"engage-api/internal/engagement/repository"
	"engage-api/internal/platform"
	pkgLog "engage-api/pkg/log"
	"engage-api/pkg/metrics"
)

const defaultMinStaleness = 6 * time.Hour

type usecase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	publisher    platform.Publisher
	m            *metrics.Metrics
	clock        func() time.Time
	minStaleness time.Duration
}

func New(l pkgLog.Logger, repo repository.Repository, publisher platform.Publisher, m *metrics.Metrics, minStaleness time.Duration) engagement.UseCase {
	if minStaleness <= 0 {
		minStaleness = defaultMinStaleness
	}
	return &usecase{
		l:            l,
		repo:         repo,
		publisher:    publisher,
		m:            m,
		clock:        time.Now,
		minStaleness: minStaleness,
	}
}
