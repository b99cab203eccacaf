package ingestion

import "errors"

var (
	ErrFileNotFound       = errors.New("ingestion: file not found")
	ErrFileDownloadFailed = errors.New("ingestion: failed to download file")
	ErrFileParseFailed    = errors.New("ingestion: failed to parse file")
	ErrInvalidBatch       = errors.New("ingestion: invalid batch")
)
