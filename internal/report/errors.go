package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report: not found")
	ErrReportNotCompleted = errors.New("report: not completed")
	ErrInvalidReportType  = errors.New("report: invalid report type")
	ErrAccountRequired    = errors.New("report: account_id is required")
	ErrInvalidPlatform    = errors.New("report: invalid platform")
	ErrAccountNotFound    = errors.New("report: account not found")
	ErrInvalidStatus      = errors.New("report: invalid status")
	ErrGenerationFailed   = errors.New("report: generation failed")
	ErrDownloadURLFailed  = errors.New("report: failed to generate download URL")
)
