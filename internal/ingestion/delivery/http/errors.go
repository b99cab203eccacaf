package http

import (
	"errors"

	"insight-srv/internal/ingestion"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Wrong body")
	errInvalidBatch       = pkgErrors.NewHTTPError(30001, "Invalid batch")
	errFileNotFound       = pkgErrors.NewHTTPError(404, "File not found in MinIO")
	errFileDownloadFailed = pkgErrors.NewHTTPError(502, "Failed to download file from MinIO")
	errFileParseFailed    = pkgErrors.NewHTTPError(30003, "Failed to parse JSONL file")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ingestion.ErrInvalidBatch):
		return errInvalidBatch
	case errors.Is(err, ingestion.ErrFileNotFound):
		return errFileNotFound
	case errors.Is(err, ingestion.ErrFileDownloadFailed):
		return errFileDownloadFailed
	case errors.Is(err, ingestion.ErrFileParseFailed):
		return errFileParseFailed
	default:
		panic(err)
	}
}
