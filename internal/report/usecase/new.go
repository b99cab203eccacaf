package usecase

import (
	"time"

	"insight-srv/internal/message"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
)

const (
	defaultReportBucket   = "insight-reports"
	defaultDownloadExpiry = time.Hour
	defaultReuseWindow    = time.Hour
	defaultSampleSize     = 10
)

// Config holds configuration for report generation.
type Config struct {
	ReportBucket   string
	DownloadExpiry time.Duration
	// ReuseWindow is how long a COMPLETED report is handed out again for identical parameters.
	ReuseWindow time.Duration
	// SampleSize caps the high-risk messages quoted in a report.
	SampleSize int
}

type implUseCase struct {
	repo      repository.PostgresRepository
	messageUC message.UseCase
	minio     minio.MinIO
	l         log.Logger
	config    Config
	now       func() time.Time
}

// New creates a new report UseCase implementation.
func New(
	repo repository.PostgresRepository,
	messageUC message.UseCase,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.ReportBucket == "" {
		cfg.ReportBucket = defaultReportBucket
	}
	if cfg.DownloadExpiry <= 0 {
		cfg.DownloadExpiry = defaultDownloadExpiry
	}
	if cfg.ReuseWindow <= 0 {
		cfg.ReuseWindow = defaultReuseWindow
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = defaultSampleSize
	}

	return &implUseCase{
		repo:      repo,
		messageUC: messageUC,
		minio:     minioClient,
		l:         l,
		config:    cfg,
		now:       time.Now,
	}
}
