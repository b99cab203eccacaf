package repository

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	CreateReport(ctx context.Context, opts CreateReportOptions) (model.Report, error)
	GetReportByID(ctx context.Context, opts GetReportOptions) (model.Report, error)
	// FindByParamsHash returns the newest matching report, or nil when there is none.
	FindByParamsHash(ctx context.Context, opts FindByParamsHashOptions) (*model.Report, error)
	UpdateCompleted(ctx context.Context, opts UpdateCompletedOptions) error
	UpdateFailed(ctx context.Context, opts UpdateFailedOptions) error
	ListReports(ctx context.Context, opts ListReportsOptions) ([]model.Report, int64, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
}
