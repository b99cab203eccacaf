package message

import (
	"insight-srv/internal/classification"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/paginator"
)

// ListInput filters stored messages. Empty fields are not filtered on.
type ListInput struct {
	Platform  string
	AccountID string
	ChatID    string
	Label     string
	Flagged   *bool
	paginator.PaginateQuery
}

type ListOutput struct {
	Messages  []model.Message
	Paginator paginator.Paginator
}

type ClassifyInput struct {
	Platform  string
	AccountID string
	ChatID    string
}

type AnalyzeAccountInput struct {
	AccountID string
}

type AccountAnalysisOutput struct {
	Account  model.Account
	Analysis sentiment.AggregateAnalysis
	Summary  string
	CacheHit bool
}

type AnalyzePlatformInput struct {
	Platform string
}

type PlatformAnalysisOutput struct {
	Platform       model.Platform
	Analysis       sentiment.AggregateAnalysis
	Classification classification.Report
}

// PlatformOverview is one dashboard card.
type PlatformOverview struct {
	Platform model.Platform
	Stats    classification.Stats
	Analysis sentiment.AggregateAnalysis
}

type OverviewOutput struct {
	Platforms []PlatformOverview
	Totals    classification.Stats
}

type SetFlagInput struct {
	MessageID string
	Flagged   bool
}

type UpsertBatchInput struct {
	Account  *model.Account
	Messages []model.Message
}

type UpsertBatchOutput struct {
	Stored int
}
