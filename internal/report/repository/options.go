package repository

import "time"

type CreateReportOptions struct {
	ID         string
	OwnerID    string
	AccountID  string
	Platform   string
	Title      string
	ReportType string
	ParamsHash string
	Params     []byte // JSON
}

type GetReportOptions struct {
	OwnerID string
	ID      string
}

type FindByParamsHashOptions struct {
	OwnerID    string
	ParamsHash string
	Status     string
}

type UpdateCompletedOptions struct {
	ID               string
	FileURL          string
	FileSizeBytes    int64
	FileFormat       string
	TotalMessages    int
	ScamRisk         string
	GenerationTimeMs int64
	CompletedAt      time.Time
}

type UpdateFailedOptions struct {
	ID           string
	ErrorMessage string
}

type ListReportsOptions struct {
	OwnerID string
	Status  string
	Limit   int64
	Offset  int64
}
