package report

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate records a PROCESSING report and renders it in the background.
	// A pending or recent report with the same parameters is returned instead.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	GetReport(ctx context.Context, sc model.Scope, input GetReportInput) (model.Report, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	DownloadReport(ctx context.Context, sc model.Scope, input DownloadReportInput) (DownloadOutput, error)
}
