package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"insight-srv/internal/classification"
	"insight-srv/internal/message"
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/locale"
	"insight-srv/pkg/log"
)

var testScope = model.Scope{UserID: "owner-1"}

func floatPtr(v float64) *float64 { return &v }

func newTestUseCase(repo *fakeRepo, msgUC *fakeMessageUC, storage *fakeStorage) *implUseCase {
	return New(repo, msgUC, storage, log.NewNop(), Config{}).(*implUseCase)
}

func accountFixture() *fakeMessageUC {
	return &fakeMessageUC{
		account: message.AccountAnalysisOutput{
			Account: model.Account{ID: "acc-1", OwnerID: "owner-1", Platform: model.PlatformTelegram, ExternalID: "42", Username: "mai"},
			Analysis: sentiment.AggregateAnalysis{
				OverallSentiment: sentiment.Negative,
				ScamRisk:         sentiment.RiskHigh,
				ScamKeywords:     []string{"bitcoin", "otp"},
				TotalMessages:    5,
				ScamMessageCount: 3,
			},
			Summary: "HIGH RISK: mai's account shows strong scam indicators.",
		},
		report: classification.Report{
			Categories: classification.Categories{
				HighRisk: []model.Message{{ID: "m1", Text: "send   bitcoin\nnow", RiskScore: floatPtr(9), Label: model.LabelFraud}},
			},
			Stats: classification.Stats{Total: 5, Fraud: 3, Safe: 2, HighRisk: 1},
		},
	}
}

func waitDone(t *testing.T, repo *fakeRepo) string {
	t.Helper()
	select {
	case id := <-repo.done:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("report generation did not finish")
		return ""
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input report.GenerateInput
		want  error
	}{
		{"unknown type", report.GenerateInput{ReportType: "WEEKLY"}, report.ErrInvalidReportType},
		{"account without id", report.GenerateInput{ReportType: report.ReportTypeAccount}, report.ErrAccountRequired},
		{"unknown platform", report.GenerateInput{ReportType: report.ReportTypePlatform, Platform: "myspace"}, report.ErrInvalidPlatform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := newTestUseCase(repo, accountFixture(), &fakeStorage{})

			_, err := uc.Generate(context.Background(), testScope, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if len(repo.created) != 0 {
				t.Error("no report should be created")
			}
		})
	}
}

func TestGenerateAccountReport(t *testing.T) {
	repo := newFakeRepo()
	storage := &fakeStorage{}
	uc := newTestUseCase(repo, accountFixture(), storage)

	out, err := uc.Generate(context.Background(), testScope, report.GenerateInput{ReportType: report.ReportTypeAccount, AccountID: "acc-1"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out.Status != report.StatusProcessing || out.Reused {
		t.Errorf("out = %+v", out)
	}

	if id := waitDone(t, repo); id != out.ReportID {
		t.Fatalf("finished %s, want %s", id, out.ReportID)
	}
	if len(repo.completed) != 1 {
		t.Fatalf("completed = %d, failed = %v", len(repo.completed), repo.failed)
	}
	c := repo.completed[0]
	if c.TotalMessages != 5 || c.ScamRisk != "High" || c.FileFormat != "md" {
		t.Errorf("completed = %+v", c)
	}
	if repo.created[0].Title != "Risk report: @mai" || repo.created[0].AccountID != "acc-1" {
		t.Errorf("created = %+v", repo.created[0])
	}

	doc := string(storage.upload("insight-reports/" + c.FileURL))
	for _, want := range []string{
		"# Risk report: @mai",
		"HIGH RISK: mai's account",
		"- Scam risk: **High**",
		"- Scam keywords: bitcoin, otp",
		"| Fraud | 3 |",
		"1. [9.0]",
		"send bitcoin now",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q:\n%s", want, doc)
		}
	}
}

func TestGeneratePlatformReportInVietnamese(t *testing.T) {
	repo := newFakeRepo()
	storage := &fakeStorage{}
	msgUC := &fakeMessageUC{platform: message.PlatformAnalysisOutput{
		Platform: model.PlatformWhatsApp,
		Analysis: sentiment.AggregateAnalysis{OverallSentiment: sentiment.Neutral, ScamRisk: sentiment.RiskLow, TotalMessages: 2},
	}}
	uc := newTestUseCase(repo, msgUC, storage)

	ctx := locale.SetLocaleToContext(context.Background(), locale.VI)
	out, err := uc.Generate(ctx, testScope, report.GenerateInput{ReportType: report.ReportTypePlatform, Platform: "WhatsApp"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	waitDone(t, repo)

	doc := string(storage.upload("insight-reports/reports/" + out.ReportID + ".md"))
	for _, want := range []string{"# Báo cáo rủi ro: WhatsApp", "Đã phân tích 2 tin nhắn trên WhatsApp", "Không có tin nhắn rủi ro cao."} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q:\n%s", want, doc)
		}
	}
	if repo.created[0].Platform != "whatsapp" {
		t.Errorf("platform = %q", repo.created[0].Platform)
	}
}

func TestGenerateReuse(t *testing.T) {
	input := report.GenerateInput{ReportType: report.ReportTypeAccount, AccountID: "acc-1"}
	hash, _, err := hashParams("owner-1", reportParams{ReportType: report.ReportTypeAccount, AccountID: "acc-1", Language: locale.EN})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		existing   model.Report
		wantReused bool
	}{
		{"processing", model.Report{ID: "r-old", OwnerID: "owner-1", ParamsHash: hash, Status: report.StatusProcessing, CreatedAt: time.Now().Add(-3 * time.Hour)}, true},
		{"recent completed", model.Report{ID: "r-old", OwnerID: "owner-1", ParamsHash: hash, Status: report.StatusCompleted, CreatedAt: time.Now().Add(-10 * time.Minute)}, true},
		{"stale completed", model.Report{ID: "r-old", OwnerID: "owner-1", ParamsHash: hash, Status: report.StatusCompleted, CreatedAt: time.Now().Add(-2 * time.Hour)}, false},
		{"failed", model.Report{ID: "r-old", OwnerID: "owner-1", ParamsHash: hash, Status: report.StatusFailed, CreatedAt: time.Now()}, false},
		{"other owner", model.Report{ID: "r-old", OwnerID: "owner-2", ParamsHash: hash, Status: report.StatusProcessing, CreatedAt: time.Now()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.reports[tt.existing.ID] = tt.existing
			uc := newTestUseCase(repo, accountFixture(), &fakeStorage{})

			out, err := uc.Generate(context.Background(), testScope, input)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if out.Reused != tt.wantReused {
				t.Fatalf("reused = %v, want %v", out.Reused, tt.wantReused)
			}
			if tt.wantReused {
				if out.ReportID != "r-old" || len(repo.created) != 0 {
					t.Errorf("out = %+v, created = %d", out, len(repo.created))
				}
				return
			}
			waitDone(t, repo)
		})
	}
}

func TestGenerateAccountNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeMessageUC{err: message.ErrAccountNotFound}, &fakeStorage{})

	_, err := uc.Generate(context.Background(), testScope, report.GenerateInput{ReportType: report.ReportTypeAccount, AccountID: "nope"})
	if !errors.Is(err, report.ErrAccountNotFound) {
		t.Fatalf("err = %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("no report should be created")
	}
}

func TestGenerateUploadFailure(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, accountFixture(), &fakeStorage{uploadErr: errors.New("bucket missing")})

	out, err := uc.Generate(context.Background(), testScope, report.GenerateInput{ReportType: report.ReportTypeAccount, AccountID: "acc-1"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	waitDone(t, repo)

	if len(repo.failed) != 1 || repo.failed[0].ID != out.ReportID || !strings.Contains(repo.failed[0].ErrorMessage, "bucket missing") {
		t.Errorf("failed = %+v", repo.failed)
	}
	if len(repo.completed) != 0 {
		t.Error("report should not be completed")
	}
}

func TestDownloadReport(t *testing.T) {
	repo := newFakeRepo()
	repo.reports["done"] = model.Report{ID: "done", OwnerID: "owner-1", Status: report.StatusCompleted, FileURL: "reports/done.md", FileFormat: "md", FileSizeBytes: 10}
	repo.reports["busy"] = model.Report{ID: "busy", OwnerID: "owner-1", Status: report.StatusProcessing}
	uc := newTestUseCase(repo, accountFixture(), &fakeStorage{})
	ctx := context.Background()

	out, err := uc.DownloadReport(ctx, testScope, report.DownloadReportInput{ReportID: "done"})
	if err != nil {
		t.Fatalf("DownloadReport() error = %v", err)
	}
	if out.URL != "https://minio.local/insight-reports/reports/done.md" || out.FileName != "report_done.md" || out.FileSize != 10 {
		t.Errorf("out = %+v", out)
	}
	if d := time.Until(out.ExpiresAt); d < 59*time.Minute || d > time.Hour {
		t.Errorf("expiry in %v, want about 1h", d)
	}

	if _, err := uc.DownloadReport(ctx, testScope, report.DownloadReportInput{ReportID: "busy"}); !errors.Is(err, report.ErrReportNotCompleted) {
		t.Errorf("busy err = %v", err)
	}
	if _, err := uc.DownloadReport(ctx, testScope, report.DownloadReportInput{ReportID: "missing"}); !errors.Is(err, report.ErrReportNotFound) {
		t.Errorf("missing err = %v", err)
	}
	if _, err := uc.DownloadReport(ctx, model.Scope{UserID: "owner-2"}, report.DownloadReportInput{ReportID: "done"}); !errors.Is(err, report.ErrReportNotFound) {
		t.Errorf("other owner err = %v", err)
	}
}

func TestList(t *testing.T) {
	repo := newFakeRepo()
	repo.reports["a"] = model.Report{ID: "a", OwnerID: "owner-1", Status: report.StatusCompleted}
	repo.reports["b"] = model.Report{ID: "b", OwnerID: "owner-1", Status: report.StatusFailed}
	uc := newTestUseCase(repo, accountFixture(), &fakeStorage{})

	out, err := uc.List(context.Background(), testScope, report.ListInput{Status: report.StatusFailed})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out.Reports) != 1 || out.Paginator.Total != 1 || out.Paginator.CurrentPage != 1 {
		t.Errorf("out = %+v", out)
	}

	if _, err := uc.List(context.Background(), testScope, report.ListInput{Status: "DONE"}); !errors.Is(err, report.ErrInvalidStatus) {
		t.Errorf("err = %v", err)
	}
}

func TestHashParams(t *testing.T) {
	p := reportParams{ReportType: report.ReportTypePlatform, Platform: "telegram", Language: locale.EN}
	h1, _, _ := hashParams("owner-1", p)
	h2, _, _ := hashParams("owner-1", p)
	h3, _, _ := hashParams("owner-2", p)
	p.Language = locale.VI
	h4, _, _ := hashParams("owner-1", p)

	if h1 != h2 {
		t.Error("hash should be stable")
	}
	if h1 == h3 || h1 == h4 {
		t.Error("owner and language must change the hash")
	}
}

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("ă", excerptRunes+5)
	got := excerpt(long)
	if !strings.HasSuffix(got, "...") || len([]rune(got)) != excerptRunes+3 {
		t.Errorf("excerpt length = %d", len([]rune(got)))
	}
	if excerpt("a\n\tb") != "a b" {
		t.Errorf("excerpt should flatten whitespace")
	}
}
