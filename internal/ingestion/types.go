package ingestion

import (
	"encoding/json"
	"time"

	"insight-srv/internal/sentiment"
	"insight-srv/pkg/util"
)

const (
	DefaultMaxConcurrency = 8
	DefaultMaxLineBytes   = 1024 * 1024
)

// Record skip reasons.
const (
	SkipValidation = "VALIDATION_ERROR"
	SkipPlatform   = "PLATFORM_MISMATCH"
)

type IngestInput struct {
	BatchID     string
	OwnerID     string
	Platform    string
	AccountID   string
	FileURL     string
	RecordCount int
	Account     *AccountProfile
}

// AccountProfile is the scraped profile of the account a batch belongs to.
type AccountProfile struct {
	ExternalID   string
	Username     string
	FirstName    string
	LastName     string
	JoinedGroups int
}

type IngestOutput struct {
	BatchID      string
	TotalRecords int
	InvalidLines int
	Stored       int
	Skipped      int
	Skips        []SkippedRecord
	Analysis     sentiment.AggregateAnalysis
	Duration     time.Duration
}

type SkippedRecord struct {
	Line   int
	ID     string
	Reason string
	Detail string
}

// Record is one JSONL line of a collected batch. Text may arrive as text or
// messageText; timestamps as RFC3339, "2006-01-02 15:04:05" or unix seconds/ms.
type Record struct {
	ID          util.FlexString `json:"id"`
	Text        string          `json:"text"`
	MessageText string          `json:"messageText"`
	Timestamp   json.RawMessage `json:"timestamp"`
	ChatID      util.FlexString `json:"chat_id"`
	ChatName    string          `json:"chat_name"`
	SenderID    util.FlexString `json:"sender_id"`
	SenderName  string          `json:"sender_name"`
	Platform    string          `json:"platform,omitempty"`
	Label       string          `json:"label"`
	IsFlagged   bool            `json:"is_flagged"`
	// RiskScore is kept only when it is a JSON number.
	RiskScore json.RawMessage `json:"risk_score,omitempty"`
}

// AnalysisCompleted is published when a batch has been stored and scored.
type AnalysisCompleted struct {
	BatchID          string
	OwnerID          string
	Platform         string
	AccountID        string
	Stored           int
	Skipped          int
	OverallSentiment string
	ScamRisk         string
	ScamKeywords     []string
	AvgCompound      float64
	ScamMessageCount int
	CompletedAt      time.Time
}

type RiskAlert struct {
	BatchID          string
	OwnerID          string
	Platform         string
	AccountID        string
	ScamRisk         string
	ScamKeywords     []string
	ScamMessageCount int
	TotalMessages    int
	RaisedAt         time.Time
}
