package message

import (
	"context"

	"insight-srv/internal/classification"
	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Classify(ctx context.Context, sc model.Scope, input ClassifyInput) (classification.Report, error)
	AnalyzeAccount(ctx context.Context, sc model.Scope, input AnalyzeAccountInput) (AccountAnalysisOutput, error)
	AnalyzePlatform(ctx context.Context, sc model.Scope, input AnalyzePlatformInput) (PlatformAnalysisOutput, error)
	Overview(ctx context.Context, sc model.Scope) (OverviewOutput, error)
	SetFlag(ctx context.Context, sc model.Scope, input SetFlagInput) (model.Message, error)

	// UpsertBatch stores already scored snapshots of one ingestion batch and
	// drops the owner's cached analyses.
	UpsertBatch(ctx context.Context, sc model.Scope, input UpsertBatchInput) (UpsertBatchOutput, error)
}
