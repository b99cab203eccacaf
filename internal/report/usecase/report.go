package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/locale"
	"insight-srv/pkg/minio"
	"insight-srv/pkg/paginator"
)

// Generate creates a new report or returns an existing one with the same parameters.
// Flow: validate → hash params → reuse → load data → create record → render in background.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	params, err := normalizeInput(input, locale.GetLang(ctx))
	if err != nil {
		return report.GenerateOutput{}, err
	}

	paramsHash, paramsJSON, err := hashParams(sc.UserID, params)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Failed to hash params: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	reused, err := uc.findReusable(ctx, sc.UserID, paramsHash)
	if err != nil {
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}
	if reused != nil {
		return report.GenerateOutput{ReportID: reused.ID, Status: reused.Status, Reused: true}, nil
	}

	data, err := uc.loadReportData(ctx, sc, params)
	if err != nil {
		return report.GenerateOutput{}, err
	}
	data.Title = input.Title

	rpt, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ID:         uuid.NewString(),
		OwnerID:    sc.UserID,
		AccountID:  params.AccountID,
		Platform:   params.Platform,
		Title:      data.title(),
		ReportType: params.ReportType,
		ParamsHash: paramsHash,
		Params:     paramsJSON,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Failed to create report: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	go uc.generateInBackground(context.WithoutCancel(ctx), rpt.ID, data)

	return report.GenerateOutput{ReportID: rpt.ID, Status: report.StatusProcessing}, nil
}

// findReusable returns a PROCESSING report, or a COMPLETED one younger than the reuse window.
func (uc *implUseCase) findReusable(ctx context.Context, ownerID, paramsHash string) (*model.Report, error) {
	processing, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		OwnerID:    ownerID,
		ParamsHash: paramsHash,
		Status:     report.StatusProcessing,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.findReusable: Failed to check processing report: %v", err)
		return nil, err
	}
	if processing != nil {
		return processing, nil
	}

	completed, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		OwnerID:    ownerID,
		ParamsHash: paramsHash,
		Status:     report.StatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.findReusable: Failed to check completed report: %v", err)
		return nil, err
	}
	if completed != nil && uc.now().Sub(completed.CreatedAt) < uc.config.ReuseWindow {
		return completed, nil
	}
	return nil, nil
}

func (uc *implUseCase) GetReport(ctx context.Context, sc model.Scope, input report.GetReportInput) (model.Report, error) {
	rpt, err := uc.repo.GetReportByID(ctx, repository.GetReportOptions{OwnerID: sc.UserID, ID: input.ReportID})
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return model.Report{}, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.GetReport: Failed to get report %s: %v", input.ReportID, err)
		return model.Report{}, err
	}
	return rpt, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input report.ListInput) (report.ListOutput, error) {
	if !isValidStatus(input.Status) {
		return report.ListOutput{}, report.ErrInvalidStatus
	}

	input.PaginateQuery.Adjust()
	reports, total, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{
		OwnerID: sc.UserID,
		Status:  input.Status,
		Limit:   input.PaginateQuery.Limit,
		Offset:  input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: Failed to list reports: %v", err)
		return report.ListOutput{}, err
	}

	return report.ListOutput{
		Reports:   reports,
		Paginator: paginator.New(input.PaginateQuery, total, int64(len(reports))),
	}, nil
}

// DownloadReport generates a presigned download URL for a completed report.
func (uc *implUseCase) DownloadReport(ctx context.Context, sc model.Scope, input report.DownloadReportInput) (report.DownloadOutput, error) {
	rpt, err := uc.GetReport(ctx, sc, report.GetReportInput(input))
	if err != nil {
		return report.DownloadOutput{}, err
	}

	if rpt.Status != report.StatusCompleted {
		return report.DownloadOutput{}, report.ErrReportNotCompleted
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ReportBucket,
		ObjectName: rpt.FileURL,
		Expiry:     uc.config.DownloadExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.DownloadReport: Failed to generate presigned URL: %v", err)
		return report.DownloadOutput{}, report.ErrDownloadURLFailed
	}

	return report.DownloadOutput{
		URL:       presigned.URL,
		ExpiresAt: presigned.ExpiresAt,
		FileName:  fmt.Sprintf("report_%s.%s", rpt.ID, rpt.FileFormat),
		FileSize:  rpt.FileSizeBytes,
	}, nil
}
