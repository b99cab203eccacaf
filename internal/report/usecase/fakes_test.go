package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"insight-srv/internal/classification"
	"insight-srv/internal/message"
	"insight-srv/internal/model"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/minio"
)

type fakeRepo struct {
	mu sync.Mutex

	reports   map[string]model.Report
	created   []repository.CreateReportOptions
	completed []repository.UpdateCompletedOptions
	failed    []repository.UpdateFailedOptions

	// done receives the report ID once it reaches a final state.
	done chan string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reports: map[string]model.Report{}, done: make(chan string, 4)}
}

func (f *fakeRepo) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, opts)
	rpt := model.Report{
		ID:         opts.ID,
		OwnerID:    opts.OwnerID,
		Title:      opts.Title,
		ReportType: opts.ReportType,
		ParamsHash: opts.ParamsHash,
		Status:     "PROCESSING",
		CreatedAt:  time.Now(),
	}
	f.reports[opts.ID] = rpt
	return rpt, nil
}

func (f *fakeRepo) GetReportByID(ctx context.Context, opts repository.GetReportOptions) (model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rpt, ok := f.reports[opts.ID]
	if !ok || rpt.OwnerID != opts.OwnerID {
		return model.Report{}, repository.ErrReportNotFound
	}
	return rpt, nil
}

func (f *fakeRepo) FindByParamsHash(ctx context.Context, opts repository.FindByParamsHashOptions) (*model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rpt := range f.reports {
		if rpt.OwnerID == opts.OwnerID && rpt.ParamsHash == opts.ParamsHash && rpt.Status == opts.Status {
			r := rpt
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	f.mu.Lock()
	f.completed = append(f.completed, opts)
	rpt := f.reports[opts.ID]
	rpt.Status = "COMPLETED"
	rpt.FileURL = opts.FileURL
	f.reports[opts.ID] = rpt
	f.mu.Unlock()
	f.done <- opts.ID
	return nil
}

func (f *fakeRepo) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	f.mu.Lock()
	f.failed = append(f.failed, opts)
	rpt := f.reports[opts.ID]
	rpt.Status = "FAILED"
	f.reports[opts.ID] = rpt
	f.mu.Unlock()
	f.done <- opts.ID
	return nil
}

func (f *fakeRepo) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]model.Report, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Report
	for _, rpt := range f.reports {
		if rpt.OwnerID == opts.OwnerID && (opts.Status == "" || rpt.Status == opts.Status) {
			out = append(out, rpt)
		}
	}
	return out, int64(len(out)), nil
}

type fakeMessageUC struct {
	message.UseCase

	account  message.AccountAnalysisOutput
	platform message.PlatformAnalysisOutput
	report   classification.Report
	err      error
}

func (f *fakeMessageUC) AnalyzeAccount(ctx context.Context, sc model.Scope, input message.AnalyzeAccountInput) (message.AccountAnalysisOutput, error) {
	return f.account, f.err
}

func (f *fakeMessageUC) AnalyzePlatform(ctx context.Context, sc model.Scope, input message.AnalyzePlatformInput) (message.PlatformAnalysisOutput, error) {
	return f.platform, f.err
}

func (f *fakeMessageUC) Classify(ctx context.Context, sc model.Scope, input message.ClassifyInput) (classification.Report, error) {
	return f.report, f.err
}

type fakeStorage struct {
	minio.MinIO

	mu        sync.Mutex
	uploads   map[string][]byte
	uploadErr error
}

func (f *fakeStorage) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	b, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[req.BucketName+"/"+req.ObjectName] = b
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(b))}, nil
}

func (f *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	if req.ObjectName == "" {
		return nil, errors.New("empty object")
	}
	return &minio.PresignedURLResponse{
		URL:       "https://minio.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: time.Now().Add(req.Expiry),
	}, nil
}

func (f *fakeStorage) upload(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploads[key]
}
