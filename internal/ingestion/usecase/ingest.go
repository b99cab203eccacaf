package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"insight-srv/internal/ingestion"
	"insight-srv/internal/message"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/minio"
)

// Ingest - Store and score one collected batch from object storage.
func (uc *implUseCase) Ingest(ctx context.Context, input ingestion.IngestInput) (ingestion.IngestOutput, error) {
	startTime := time.Now()

	// Step 1: Validate batch
	platform, ok := model.ParsePlatform(input.Platform)
	if !ok || input.BatchID == "" || input.OwnerID == "" || input.FileURL == "" {
		uc.l.Warnf(ctx, "ingestion.usecase.Ingest: Invalid batch %q (owner=%q platform=%q)", input.BatchID, input.OwnerID, input.Platform)
		return ingestion.IngestOutput{}, ingestion.ErrInvalidBatch
	}

	// Step 2: Resolve file location
	bucket, objectName, err := parseFileURL(input.FileURL)
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.Ingest: Failed to parse file URL: %v", err)
		return ingestion.IngestOutput{}, ingestion.ErrFileNotFound
	}

	// Step 3: Download
	reader, _, err := uc.storage.DownloadFile(ctx, &minio.DownloadRequest{
		BucketName: bucket,
		ObjectName: objectName,
	})
	if err != nil {
		if minio.IsNotFound(err) {
			uc.l.Warnf(ctx, "ingestion.usecase.Ingest: File %s/%s not found", bucket, objectName)
			return ingestion.IngestOutput{}, ingestion.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "ingestion.usecase.Ingest: Failed to download file: %v", err)
		return ingestion.IngestOutput{}, ingestion.ErrFileDownloadFailed
	}
	defer reader.Close()

	// Step 4: Parse JSONL
	records, invalid, err := uc.parseJSONL(ctx, reader)
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.Ingest: Failed to parse file: %v", err)
		return ingestion.IngestOutput{}, ingestion.ErrFileParseFailed
	}
	if input.RecordCount > 0 && input.RecordCount != len(records)+invalid {
		uc.l.Warnf(ctx, "ingestion.usecase.Ingest: Batch %s announced %d records, file has %d",
			input.BatchID, input.RecordCount, len(records)+invalid)
	}

	// Step 5: Validate and score (parallel)
	msgs, skips := uc.scoreRecords(ctx, input, platform, records, startTime)

	// Step 6: Persist
	out := ingestion.IngestOutput{
		BatchID:      input.BatchID,
		TotalRecords: len(records),
		InvalidLines: invalid,
		Skipped:      len(skips),
		Skips:        skips,
	}
	if len(msgs) > 0 {
		stored, err := uc.messageUC.UpsertBatch(ctx, model.SystemScope(input.OwnerID), message.UpsertBatchInput{
			Account:  toAccount(platform, input.Account),
			Messages: msgs,
		})
		if err != nil {
			uc.l.Errorf(ctx, "ingestion.usecase.Ingest: Failed to store batch %s: %v", input.BatchID, err)
			return ingestion.IngestOutput{}, fmt.Errorf("store batch %s: %w", input.BatchID, err)
		}
		out.Stored = stored.Stored
	}

	// Step 7: Aggregate and notify
	out.Analysis = uc.sentimentUC.AnalyzeMessages(toSentimentMessages(msgs))
	uc.notify(ctx, input, platform, out)

	out.Duration = time.Since(startTime)
	return out, nil
}

// scoreRecords - Validate and score records with bounded concurrency. The
// returned messages keep file order.
func (uc *implUseCase) scoreRecords(ctx context.Context, input ingestion.IngestInput, platform model.Platform, records []lineRecord, fallback time.Time) ([]model.Message, []ingestion.SkippedRecord) {
	var (
		mu    sync.Mutex
		skips []ingestion.SkippedRecord
	)
	scored := make([]*model.Message, len(records))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(uc.maxConcurrency)

	for i, r := range records {
		g.Go(func() error {
			if err := validateRecord(r); err != nil {
				mu.Lock()
				skips = append(skips, ingestion.SkippedRecord{Line: r.line, ID: r.record.ID.String(), Reason: ingestion.SkipValidation, Detail: err.Error()})
				mu.Unlock()
				return nil
			}
			if r.record.Platform != "" && !strings.EqualFold(strings.TrimSpace(r.record.Platform), platform.String()) {
				mu.Lock()
				skips = append(skips, ingestion.SkippedRecord{Line: r.line, ID: r.record.ID.String(), Reason: ingestion.SkipPlatform, Detail: r.record.Platform})
				mu.Unlock()
				return nil
			}

			m := toMessage(input, platform, r, fallback)
			res := uc.sentimentUC.AnalyzeSentiment(m.Text)
			m.Sentiment = string(res.Sentiment)
			m.Compound = res.Compound
			m.ScamScore = res.Score.Scam
			scored[i] = &m
			return nil
		})
	}
	_ = g.Wait()

	msgs := make([]model.Message, 0, len(records))
	for _, m := range scored {
		if m != nil {
			msgs = append(msgs, *m)
		}
	}
	return msgs, sortSkips(skips)
}

func (uc *implUseCase) notify(ctx context.Context, input ingestion.IngestInput, platform model.Platform, out ingestion.IngestOutput) {
	now := time.Now()
	a := out.Analysis

	if uc.publisher != nil {
		event := ingestion.AnalysisCompleted{
			BatchID:          input.BatchID,
			OwnerID:          input.OwnerID,
			Platform:         platform.String(),
			AccountID:        input.AccountID,
			Stored:           out.Stored,
			Skipped:          out.Skipped,
			OverallSentiment: string(a.OverallSentiment),
			ScamRisk:         string(a.ScamRisk),
			ScamKeywords:     a.ScamKeywords,
			AvgCompound:      a.AvgCompound,
			ScamMessageCount: a.ScamMessageCount,
			CompletedAt:      now,
		}
		if err := uc.publisher.PublishAnalysisCompleted(ctx, event); err != nil {
			uc.l.Warnf(ctx, "ingestion.usecase.notify: Failed to publish analysis of batch %s: %v", input.BatchID, err)
		}
	}

	if a.ScamRisk != sentiment.RiskHigh || uc.alerter == nil {
		return
	}
	alert := ingestion.RiskAlert{
		BatchID:          input.BatchID,
		OwnerID:          input.OwnerID,
		Platform:         platform.String(),
		AccountID:        input.AccountID,
		ScamRisk:         string(a.ScamRisk),
		ScamKeywords:     a.ScamKeywords,
		ScamMessageCount: a.ScamMessageCount,
		TotalMessages:    a.TotalMessages,
		RaisedAt:         now,
	}
	if err := uc.alerter.PublishRiskAlert(ctx, alert); err != nil {
		uc.l.Warnf(ctx, "ingestion.usecase.notify: Failed to raise alert for batch %s: %v", input.BatchID, err)
	}
}
