package usecase

import (
	candidateRepo "engage-api/internal/candidate/repository"
	"engage-api/internal/monitor"
	"engage-api/internal/monitor/repository"
	pkgLog "engage-api/pkg/log"
)

type usecase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	candidateRepo candidateRepo.Repository
}

func New(l pkgLog.Logger, repo repository.Repository, candidates candidateRepo.Repository) monitor.UseCase {
	return &usecase{
		l:             l,
		repo:          repo,
		candidateRepo: candidates,
	}
}
