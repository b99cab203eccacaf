package kafka

import (
	"encoding/json"
	"time"
)

const (
	TopicMessagesIngested  = "insight.messages.ingested"
	TopicAnalysisCompleted = "insight.analysis.completed"
	GroupIDIngestion       = "insight-ingestion-batch"
)

// BatchIngestedMessage - Kafka message for insight.messages.ingested
type BatchIngestedMessage struct {
	BatchID     string          `json:"batch_id"`
	OwnerID     string          `json:"owner_id"`
	Platform    string          `json:"platform"`
	AccountID   string          `json:"account_id,omitempty"`
	FileURL     string          `json:"file_url"`
	RecordCount int             `json:"record_count"`
	CompletedAt json.RawMessage `json:"completed_at,omitempty"`
	Account     *AccountMessage `json:"account,omitempty"`
}

type AccountMessage struct {
	ExternalID   string `json:"external_id"`
	Username     string `json:"username,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	JoinedGroups int    `json:"joined_groups,omitempty"`
}

// AnalysisCompletedMessage - Kafka message for insight.analysis.completed
type AnalysisCompletedMessage struct {
	BatchID          string    `json:"batch_id"`
	OwnerID          string    `json:"owner_id"`
	Platform         string    `json:"platform"`
	AccountID        string    `json:"account_id,omitempty"`
	Stored           int       `json:"stored"`
	Skipped          int       `json:"skipped"`
	OverallSentiment string    `json:"overall_sentiment"`
	ScamRisk         string    `json:"scam_risk"`
	ScamKeywords     []string  `json:"scam_keywords"`
	AvgCompound      float64   `json:"avg_compound"`
	ScamMessageCount int       `json:"scam_message_count"`
	CompletedAt      time.Time `json:"completed_at"`
}
