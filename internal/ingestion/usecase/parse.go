package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"insight-srv/internal/ingestion"
)

const initialBufferSize = 64 * 1024

var urlSchemes = []string{"s3://", "minio://"}

type lineRecord struct {
	line   int
	record ingestion.Record
}

// parseFileURL - Split s3://bucket/object, minio://bucket/object or bucket/object.
func parseFileURL(fileURL string) (bucket, objectName string, err error) {
	path := strings.TrimSpace(fileURL)
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(path, scheme) {
			path = path[len(scheme):]
			break
		}
	}
	if strings.Contains(path, "://") {
		return "", "", fmt.Errorf("unsupported file URL scheme: %s", fileURL)
	}

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid file URL format: %s", fileURL)
	}

	return parts[0], parts[1], nil
}

// parseJSONL - Decode one record per line. Blank lines are ignored; lines that
// are not a JSON object are counted in invalid and skipped.
func (uc *implUseCase) parseJSONL(ctx context.Context, reader io.Reader) (records []lineRecord, invalid int, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, min(initialBufferSize, uc.maxLineBytes)), uc.maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var record ingestion.Record
		if err := json.Unmarshal(line, &record); err != nil {
			uc.l.Warnf(ctx, "ingestion.usecase.parseJSONL: Failed to parse line %d: %v", lineNum, err)
			invalid++
			continue
		}

		records = append(records, lineRecord{line: lineNum, record: record})
	}

	if err := scanner.Err(); err != nil {
		return nil, invalid, fmt.Errorf("scanner error at line %d: %w", lineNum+1, err)
	}

	return records, invalid, nil
}
