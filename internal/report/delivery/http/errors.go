package http

import (
	"errors"

	"insight-srv/internal/report"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery         = pkgErrors.NewHTTPError(400, "Wrong query")
	errReportIDMissing    = pkgErrors.NewHTTPError(400, "Report ID is required")
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Report not found")
	errReportNotCompleted = pkgErrors.NewHTTPError(409, "Report is not completed yet")
	errInvalidReportType  = pkgErrors.NewHTTPError(400, "Invalid report type")
	errAccountRequired    = pkgErrors.NewHTTPError(400, "Account ID is required")
	errInvalidPlatform    = pkgErrors.NewHTTPError(400, "Invalid platform")
	errAccountNotFound    = pkgErrors.NewHTTPError(404, "Account not found")
	errInvalidStatus      = pkgErrors.NewHTTPError(400, "Invalid status")
	errGenerationFailed   = pkgErrors.NewHTTPError(500, "Report generation failed")
	errDownloadURLFailed  = pkgErrors.NewHTTPError(500, "Failed to generate download URL")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrReportNotCompleted):
		return errReportNotCompleted
	case errors.Is(err, report.ErrInvalidReportType):
		return errInvalidReportType
	case errors.Is(err, report.ErrAccountRequired):
		return errAccountRequired
	case errors.Is(err, report.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, report.ErrAccountNotFound):
		return errAccountNotFound
	case errors.Is(err, report.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, report.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		panic(err)
	}
}
