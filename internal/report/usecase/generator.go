package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"insight-srv/internal/classification"
	"insight-srv/internal/message"
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/minio"
)

const markdownContentType = "text/markdown; charset=utf-8"

// loadReportData runs the account or platform analysis the report is built from.
func (uc *implUseCase) loadReportData(ctx context.Context, sc model.Scope, params reportParams) (reportData, error) {
	data := reportData{
		ReportType:  params.ReportType,
		Lang:        params.Language,
		GeneratedAt: uc.now(),
	}

	switch params.ReportType {
	case report.ReportTypeAccount:
		a, err := uc.messageUC.AnalyzeAccount(ctx, sc, message.AnalyzeAccountInput{AccountID: params.AccountID})
		if err != nil {
			return reportData{}, uc.mapMessageError(ctx, err)
		}
		cls, err := uc.messageUC.Classify(ctx, sc, message.ClassifyInput{AccountID: params.AccountID})
		if err != nil {
			return reportData{}, uc.mapMessageError(ctx, err)
		}

		acc := a.Account
		data.Account = &acc
		data.Platform = acc.Platform
		data.Analysis = a.Analysis
		data.Summary = a.Summary
		data.Stats = cls.Stats
		data.Samples = uc.sampleMessages(cls)

	case report.ReportTypePlatform:
		p, err := uc.messageUC.AnalyzePlatform(ctx, sc, message.AnalyzePlatformInput{Platform: params.Platform})
		if err != nil {
			return reportData{}, uc.mapMessageError(ctx, err)
		}

		data.Platform = p.Platform
		data.Analysis = p.Analysis
		data.Stats = p.Classification.Stats
		data.Samples = uc.sampleMessages(p.Classification)
	}

	return data, nil
}

func (uc *implUseCase) mapMessageError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, message.ErrAccountNotFound):
		return report.ErrAccountNotFound
	case errors.Is(err, message.ErrInvalidPlatform):
		return report.ErrInvalidPlatform
	default:
		uc.l.Errorf(ctx, "report.usecase.loadReportData: Failed to load analysis: %v", err)
		return report.ErrGenerationFailed
	}
}

// sampleMessages quotes high-risk messages, falling back to flagged ones.
func (uc *implUseCase) sampleMessages(cls classification.Report) []model.Message {
	src := cls.Categories.HighRisk
	if len(src) == 0 {
		src = cls.Categories.Flagged
	}
	if len(src) > uc.config.SampleSize {
		src = src[:uc.config.SampleSize]
	}
	return src
}

// generateInBackground renders and uploads the report, then records the outcome.
// It runs in its own goroutine and must handle its own errors.
func (uc *implUseCase) generateInBackground(ctx context.Context, reportID string, data reportData) {
	start := uc.now()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "report.usecase.generateInBackground: panic recovered: %v", r)
			uc.markFailed(ctx, reportID, fmt.Sprintf("internal panic: %v", r))
		}
	}()

	body := []byte(renderMarkdown(data))
	object := objectName(reportID)

	if _, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.config.ReportBucket,
		ObjectName:   object,
		OriginalName: fmt.Sprintf("report_%s.%s", reportID, report.FormatMarkdown),
		Reader:       bytes.NewReader(body),
		Size:         int64(len(body)),
		ContentType:  markdownContentType,
		Metadata: map[string]string{
			"report_id":   reportID,
			"report_type": data.ReportType,
			"language":    data.Lang,
		},
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: Upload failed for report %s: %v", reportID, err)
		uc.markFailed(ctx, reportID, fmt.Sprintf("upload failed: %v", err))
		return
	}

	completedAt := uc.now()
	elapsed := completedAt.Sub(start).Milliseconds()

	if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ID:               reportID,
		FileURL:          object,
		FileSizeBytes:    int64(len(body)),
		FileFormat:       report.FormatMarkdown,
		TotalMessages:    data.Analysis.TotalMessages,
		ScamRisk:         string(data.Analysis.ScamRisk),
		GenerationTimeMs: elapsed,
		CompletedAt:      completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: Failed to mark report %s completed: %v", reportID, err)
		return
	}

	uc.l.Infof(ctx, "report.usecase.generateInBackground: Report %s completed in %dms", reportID, elapsed)
}

func (uc *implUseCase) markFailed(ctx context.Context, reportID, reason string) {
	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{ID: reportID, ErrorMessage: reason}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.markFailed: Failed to mark report %s failed: %v", reportID, err)
	}
}
