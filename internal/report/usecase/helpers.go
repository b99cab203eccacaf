package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/pkg/locale"
)

// reportParams is what identifies a report for reuse. It is also stored as the params column.
type reportParams struct {
	ReportType string `json:"report_type"`
	AccountID  string `json:"account_id,omitempty"`
	Platform   string `json:"platform,omitempty"`
	Language   string `json:"language"`
}

// normalizeInput validates input and returns its canonical parameters.
func normalizeInput(input report.GenerateInput, lang string) (reportParams, error) {
	if input.Language != "" {
		lang = locale.ParseLang(input.Language)
	}

	switch input.ReportType {
	case report.ReportTypeAccount:
		if input.AccountID == "" {
			return reportParams{}, report.ErrAccountRequired
		}
		return reportParams{ReportType: input.ReportType, AccountID: input.AccountID, Language: lang}, nil
	case report.ReportTypePlatform:
		p, ok := model.ParsePlatform(input.Platform)
		if !ok {
			return reportParams{}, report.ErrInvalidPlatform
		}
		return reportParams{ReportType: input.ReportType, Platform: string(p), Language: lang}, nil
	default:
		return reportParams{}, report.ErrInvalidReportType
	}
}

// hashParams - SHA-256 over the canonical JSON of p, scoped to the owner.
func hashParams(ownerID string, p reportParams) (string, []byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", nil, err
	}
	sum := sha256.Sum256(append([]byte(ownerID+"|"), b...))
	return hex.EncodeToString(sum[:]), b, nil
}

func isValidStatus(s string) bool {
	switch s {
	case "", report.StatusProcessing, report.StatusCompleted, report.StatusFailed:
		return true
	}
	return false
}

func objectName(reportID string) string {
	return "reports/" + reportID + "." + report.FormatMarkdown
}
