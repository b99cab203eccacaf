package report

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

const (
	ReportTypeAccount  = "ACCOUNT"
	ReportTypePlatform = "PLATFORM"

	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"

	FormatMarkdown = "md"
)

// GenerateInput selects the report subject. AccountID is required for
// ACCOUNT reports, Platform for PLATFORM reports.
type GenerateInput struct {
	ReportType string
	AccountID  string
	Platform   string
	Title      string
	// Language overrides the request locale (en | vi).
	Language string
}

type GenerateOutput struct {
	ReportID string
	Status   string
	Reused   bool
}

type GetReportInput struct {
	ReportID string
}

type ListInput struct {
	Status string
	paginator.PaginateQuery
}

type ListOutput struct {
	Reports   []model.Report
	Paginator paginator.Paginator
}

type DownloadReportInput struct {
	ReportID string
}

type DownloadOutput struct {
	URL       string
	ExpiresAt time.Time
	FileName  string
	FileSize  int64
}
