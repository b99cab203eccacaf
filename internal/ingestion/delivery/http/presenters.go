package http

import (
	"insight-srv/internal/ingestion"
)

type accountReq struct {
	ExternalID   string `json:"external_id" binding:"required"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	JoinedGroups int    `json:"joined_groups" binding:"min=0"`
}

type ingestReq struct {
	BatchID     string      `json:"batch_id" binding:"required"`
	OwnerID     string      `json:"owner_id" binding:"required"`
	Platform    string      `json:"platform" binding:"required"`
	AccountID   string      `json:"account_id"`
	FileURL     string      `json:"file_url" binding:"required"`
	RecordCount int         `json:"record_count" binding:"min=0"`
	Account     *accountReq `json:"account"`
}

func (r ingestReq) toInput() ingestion.IngestInput {
	input := ingestion.IngestInput{
		BatchID:     r.BatchID,
		OwnerID:     r.OwnerID,
		Platform:    r.Platform,
		AccountID:   r.AccountID,
		FileURL:     r.FileURL,
		RecordCount: r.RecordCount,
	}
	if r.Account != nil {
		input.Account = &ingestion.AccountProfile{
			ExternalID:   r.Account.ExternalID,
			Username:     r.Account.Username,
			FirstName:    r.Account.FirstName,
			LastName:     r.Account.LastName,
			JoinedGroups: r.Account.JoinedGroups,
		}
	}
	return input
}

type skipResp struct {
	Line   int    `json:"line"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

type ingestResp struct {
	BatchID          string     `json:"batch_id"`
	TotalRecords     int        `json:"total_records"`
	InvalidLines     int        `json:"invalid_lines"`
	Stored           int        `json:"stored"`
	Skipped          int        `json:"skipped"`
	Skips            []skipResp `json:"skips"`
	OverallSentiment string     `json:"overall_sentiment"`
	ScamRisk         string     `json:"scam_risk"`
	DurationMs       int64      `json:"duration_ms"`
}

func (h *handler) newIngestResp(o ingestion.IngestOutput) ingestResp {
	skips := make([]skipResp, 0, len(o.Skips))
	for _, s := range o.Skips {
		skips = append(skips, skipResp{
			Line:   s.Line,
			ID:     s.ID,
			Reason: s.Reason,
			Detail: s.Detail,
		})
	}

	return ingestResp{
		BatchID:          o.BatchID,
		TotalRecords:     o.TotalRecords,
		InvalidLines:     o.InvalidLines,
		Stored:           o.Stored,
		Skipped:          o.Skipped,
		Skips:            skips,
		OverallSentiment: string(o.Analysis.OverallSentiment),
		ScamRisk:         string(o.Analysis.ScamRisk),
		DurationMs:       o.Duration.Milliseconds(),
	}
}
