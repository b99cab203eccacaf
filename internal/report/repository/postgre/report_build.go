package postgre

import (
	"time"

	"github.com/aarondl/null/v8"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// buildCreateReport - Build the PROCESSING row for CreateReportOptions.
func buildCreateReport(opts repository.CreateReportOptions, now time.Time) model.ReportRow {
	row := model.ReportRow{
		ID:         opts.ID,
		OwnerID:    opts.OwnerID,
		AccountID:  null.NewString(opts.AccountID, opts.AccountID != ""),
		Platform:   null.NewString(opts.Platform, opts.Platform != ""),
		Title:      null.NewString(opts.Title, opts.Title != ""),
		ReportType: opts.ReportType,
		ParamsHash: opts.ParamsHash,
		Status:     report.StatusProcessing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if len(opts.Params) > 0 {
		row.Params = null.JSONFrom(opts.Params)
	}
	return row
}

func reportRowArgs(row model.ReportRow) []any {
	return []any{
		row.ID,
		row.OwnerID,
		row.AccountID,
		row.Platform,
		row.Title,
		row.ReportType,
		row.ParamsHash,
		row.Params,
		row.Status,
		row.ErrorMessage,
		row.FileURL,
		row.FileSizeBytes,
		row.FileFormat,
		row.TotalMessages,
		row.ScamRisk,
		row.GenerationTimeMS,
		row.CompletedAt,
		row.CreatedAt,
		row.UpdatedAt,
	}
}

func scanReportRow(s rowScanner) (model.ReportRow, error) {
	var row model.ReportRow
	err := s.Scan(
		&row.ID,
		&row.OwnerID,
		&row.AccountID,
		&row.Platform,
		&row.Title,
		&row.ReportType,
		&row.ParamsHash,
		&row.Params,
		&row.Status,
		&row.ErrorMessage,
		&row.FileURL,
		&row.FileSizeBytes,
		&row.FileFormat,
		&row.TotalMessages,
		&row.ScamRisk,
		&row.GenerationTimeMS,
		&row.CompletedAt,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}
