package usecase

import (
	"insight-srv/config"
	"insight-srv/internal/ingestion"
	"insight-srv/internal/message"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
)

type implUseCase struct {
	l              log.Logger
	storage        minio.MinIO
	messageUC      message.UseCase
	sentimentUC    sentiment.UseCase
	publisher      ingestion.Publisher
	alerter        ingestion.Alerter
	maxConcurrency int
	maxLineBytes   int
}

// New creates the ingestion usecase. alerter may be nil when no broker is configured.
func New(
	l log.Logger,
	cfg config.IngestionConfig,
	storage minio.MinIO,
	messageUC message.UseCase,
	sentimentUC sentiment.UseCase,
	publisher ingestion.Publisher,
	alerter ingestion.Alerter,
) ingestion.UseCase {
	uc := &implUseCase{
		l:              l,
		storage:        storage,
		messageUC:      messageUC,
		sentimentUC:    sentimentUC,
		publisher:      publisher,
		alerter:        alerter,
		maxConcurrency: cfg.MaxConcurrency,
		maxLineBytes:   cfg.MaxLineBytes,
	}
	if uc.maxConcurrency <= 0 {
		uc.maxConcurrency = ingestion.DefaultMaxConcurrency
	}
	if uc.maxLineBytes <= 0 {
		uc.maxLineBytes = ingestion.DefaultMaxLineBytes
	}
	return uc
}
