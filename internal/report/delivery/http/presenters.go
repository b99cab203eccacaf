package http

import (
	"encoding/json"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/pkg/paginator"
	"insight-srv/pkg/response"
)

type generateReq struct {
	ReportType string `json:"report_type" binding:"required,oneof=ACCOUNT PLATFORM"`
	AccountID  string `json:"account_id"`
	Platform   string `json:"platform"`
	Title      string `json:"title" binding:"max=200"`
	Language   string `json:"language"`
}

func (r generateReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		ReportType: r.ReportType,
		AccountID:  r.AccountID,
		Platform:   r.Platform,
		Title:      r.Title,
		Language:   r.Language,
	}
}

type listReq struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int64  `form:"limit"`
}

func (r listReq) toInput() report.ListInput {
	return report.ListInput{
		Status: r.Status,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type generateResp struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
	Reused   bool   `json:"reused"`
}

func (h *handler) newGenerateResp(o report.GenerateOutput) generateResp {
	return generateResp{
		ReportID: o.ReportID,
		Status:   o.Status,
		Reused:   o.Reused,
	}
}

type reportResp struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	ReportType       string             `json:"report_type"`
	AccountID        string             `json:"account_id,omitempty"`
	Platform         string             `json:"platform,omitempty"`
	Status           string             `json:"status"`
	ErrorMessage     string             `json:"error_message,omitempty"`
	FileFormat       string             `json:"file_format,omitempty"`
	FileSizeBytes    int64              `json:"file_size_bytes,omitempty"`
	TotalMessages    int                `json:"total_messages,omitempty"`
	ScamRisk         string             `json:"scam_risk,omitempty"`
	GenerationTimeMs int64              `json:"generation_time_ms,omitempty"`
	Params           json.RawMessage    `json:"params,omitempty" swaggertype:"object"`
	CompletedAt      *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt        response.DateTime  `json:"created_at"`
}

func (h *handler) newReportResp(r model.Report) reportResp {
	resp := reportResp{
		ID:               r.ID,
		Title:            r.Title,
		ReportType:       r.ReportType,
		AccountID:        r.AccountID,
		Platform:         r.Platform,
		Status:           r.Status,
		ErrorMessage:     r.ErrorMessage,
		FileFormat:       r.FileFormat,
		FileSizeBytes:    r.FileSizeBytes,
		TotalMessages:    r.TotalMessages,
		ScamRisk:         r.ScamRisk,
		GenerationTimeMs: r.GenerationTimeMs,
		Params:           r.Params,
		CreatedAt:        response.DateTime(r.CreatedAt),
	}
	if r.CompletedAt != nil {
		t := response.DateTime(*r.CompletedAt)
		resp.CompletedAt = &t
	}
	return resp
}

type listResp struct {
	Reports   []reportResp                `json:"reports"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(o report.ListOutput) listResp {
	reports := make([]reportResp, 0, len(o.Reports))
	for _, r := range o.Reports {
		reports = append(reports, h.newReportResp(r))
	}
	return listResp{
		Reports:   reports,
		Paginator: o.Paginator.ToResponse(),
	}
}

type downloadResp struct {
	DownloadURL string            `json:"download_url"`
	ExpiresAt   response.DateTime `json:"expires_at"`
	FileName    string            `json:"file_name"`
	FileSize    int64             `json:"file_size"`
}

func (h *handler) newDownloadResp(o report.DownloadOutput) downloadResp {
	return downloadResp{
		DownloadURL: o.URL,
		ExpiresAt:   response.DateTime(o.ExpiresAt),
		FileName:    o.FileName,
		FileSize:    o.FileSize,
	}
}
