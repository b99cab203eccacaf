package model

import (
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
)

// Report represents a generated risk report record.
type Report struct {
	ID        string
	OwnerID   string
	AccountID string
	Platform  string

	// Report Configuration
	Title      string
	ReportType string // ACCOUNT | PLATFORM
	ParamsHash string
	Params     json.RawMessage

	// Status
	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Output
	FileURL       string
	FileSizeBytes int64
	FileFormat    string

	// Metrics
	TotalMessages    int
	ScamRisk         string
	GenerationTimeMs int64

	// Timestamps
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReportRow is the database projection of Report.
type ReportRow struct {
	ID               string
	OwnerID          string
	AccountID        null.String
	Platform         null.String
	Title            null.String
	ReportType       string
	ParamsHash       string
	Params           null.JSON
	Status           string
	ErrorMessage     null.String
	FileURL          null.String
	FileSizeBytes    null.Int64
	FileFormat       null.String
	TotalMessages    null.Int
	ScamRisk         null.String
	GenerationTimeMS null.Int64
	CompletedAt      null.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewReportFromDB converts a ReportRow to model Report.
func NewReportFromDB(db ReportRow) Report {
	rpt := Report{
		ID:               db.ID,
		OwnerID:          db.OwnerID,
		AccountID:        db.AccountID.String,
		Platform:         db.Platform.String,
		Title:            db.Title.String,
		ReportType:       db.ReportType,
		ParamsHash:       db.ParamsHash,
		Status:           db.Status,
		ErrorMessage:     db.ErrorMessage.String,
		FileURL:          db.FileURL.String,
		FileSizeBytes:    db.FileSizeBytes.Int64,
		FileFormat:       db.FileFormat.String,
		TotalMessages:    db.TotalMessages.Int,
		ScamRisk:         db.ScamRisk.String,
		GenerationTimeMs: db.GenerationTimeMS.Int64,
		CreatedAt:        db.CreatedAt,
		UpdatedAt:        db.UpdatedAt,
	}

	if db.Params.Valid {
		rpt.Params = json.RawMessage(db.Params.JSON)
	}
	if db.CompletedAt.Valid {
		t := db.CompletedAt.Time
		rpt.CompletedAt = &t
	}

	return rpt
}
