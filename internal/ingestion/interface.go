package ingestion

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
}

// Publisher announces finished batches to downstream consumers.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishAnalysisCompleted(ctx context.Context, event AnalysisCompleted) error
}

// Alerter raises risk alerts for batches with a high scam tier.
//
//go:generate mockery --name Alerter
type Alerter interface {
	PublishRiskAlert(ctx context.Context, alert RiskAlert) error
}
