package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insight-srv/internal/middleware"
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/pkg/log"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	report.UseCase

	genInput report.GenerateInput
	genErr   error
	getErr   error
	dlErr    error
}

func (f *fakeUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	f.genInput = input
	if f.genErr != nil {
		return report.GenerateOutput{}, f.genErr
	}
	return report.GenerateOutput{ReportID: "r-1", Status: report.StatusProcessing}, nil
}

func (f *fakeUseCase) GetReport(ctx context.Context, sc model.Scope, input report.GetReportInput) (model.Report, error) {
	if f.getErr != nil {
		return model.Report{}, f.getErr
	}
	done := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return model.Report{ID: input.ReportID, OwnerID: sc.UserID, Status: report.StatusCompleted, CompletedAt: &done, TotalMessages: 7}, nil
}

func (f *fakeUseCase) DownloadReport(ctx context.Context, sc model.Scope, input report.DownloadReportInput) (report.DownloadOutput, error) {
	if f.dlErr != nil {
		return report.DownloadOutput{}, f.dlErr
	}
	return report.DownloadOutput{URL: "https://minio/x", FileName: "report_r-1.md", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u-1"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), middleware.Middleware{})
	return r
}

func TestGenerateHandler(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"account", `{"report_type":"ACCOUNT","account_id":"a-1"}`, nil, http.StatusOK},
		{"unknown type", `{"report_type":"WEEKLY"}`, nil, http.StatusBadRequest},
		{"missing type", `{}`, nil, http.StatusBadRequest},
		{"account not found", `{"report_type":"ACCOUNT","account_id":"a-1"}`, report.ErrAccountNotFound, http.StatusNotFound},
		{"account required", `{"report_type":"ACCOUNT"}`, report.ErrAccountRequired, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{genErr: tt.err}
			r := newTestRouter(uc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(tt.body)))
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestGetReportHandler(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/r-9", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data["id"] != "r-9" || body.Data["total_messages"] != float64(7) || body.Data["completed_at"] == nil {
		t.Errorf("data = %v", body.Data)
	}

	r = newTestRouter(&fakeUseCase{getErr: report.ErrReportNotFound})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/r-9", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDownloadReportHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"not completed", report.ErrReportNotCompleted, http.StatusConflict},
		{"not found", report.ErrReportNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{dlErr: tt.err})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/r-1/download", nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
