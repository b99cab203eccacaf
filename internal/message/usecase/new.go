package usecase

import (
	"insight-srv/internal/classification"
	"insight-srv/internal/message"
	"insight-srv/internal/message/repository"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l            log.Logger
	repo         repository.PostgresRepository
	cache        repository.CacheRepository
	sentimentUC  sentiment.UseCase
	classifierUC classification.UseCase
}

func New(
	l log.Logger,
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	sentimentUC sentiment.UseCase,
	classifierUC classification.UseCase,
) message.UseCase {
	return &implUseCase{
		l:            l,
		repo:         repo,
		cache:        cache,
		sentimentUC:  sentimentUC,
		classifierUC: classifierUC,
	}
}
