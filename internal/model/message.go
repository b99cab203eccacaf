package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Message is a normalized chat message or comment snapshot.
type Message struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Platform   Platform  `json:"platform"`
	AccountID  string    `json:"account_id,omitempty"`
	ExternalID string    `json:"external_id"`
	ChatID     string    `json:"chat_id,omitempty"`
	ChatName   string    `json:"chat_name,omitempty"`
	SenderID   string    `json:"sender_id,omitempty"`
	SenderName string    `json:"sender_name,omitempty"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`

	// Moderation
	Label     Label    `json:"label"`
	IsFlagged bool     `json:"is_flagged"`
	RiskScore *float64 `json:"risk_score,omitempty"`

	// Lexical scoring computed at ingestion
	Sentiment string  `json:"sentiment,omitempty"`
	Compound  float64 `json:"compound"`
	ScamScore float64 `json:"scam_score"`

	BatchID   string    `json:"batch_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageRow is the database projection of Message. Text holds ciphertext.
type MessageRow struct {
	ID            string
	OwnerID       string
	Platform      string
	AccountID     null.String
	ExternalID    string
	ChatID        null.String
	ChatName      null.String
	SenderID      null.String
	SenderName    null.String
	TextEncrypted string
	SentAt        time.Time
	Label         null.String
	IsFlagged     bool
	RiskScore     null.Float64
	Sentiment     null.String
	Compound      float64
	ScamScore     float64
	BatchID       null.String
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewMessageFromDB converts a row to Message. text is the decrypted content.
func NewMessageFromDB(row MessageRow, text string) Message {
	m := Message{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Platform:   Platform(row.Platform),
		AccountID:  row.AccountID.String,
		ExternalID: row.ExternalID,
		ChatID:     row.ChatID.String,
		ChatName:   row.ChatName.String,
		SenderID:   row.SenderID.String,
		SenderName: row.SenderName.String,
		Text:       text,
		Timestamp:  row.SentAt,
		Label:      LabelOther,
		IsFlagged:  row.IsFlagged,
		Sentiment:  row.Sentiment.String,
		Compound:   row.Compound,
		ScamScore:  row.ScamScore,
		BatchID:    row.BatchID.String,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.Label.Valid {
		m.Label = ParseLabel(row.Label.String)
	}
	if row.RiskScore.Valid {
		score := row.RiskScore.Float64
		m.RiskScore = &score
	}
	return m
}

// ToDBRow converts Message to a row with the already encrypted text.
func (m Message) ToDBRow(textEncrypted string) MessageRow {
	row := MessageRow{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Platform:      string(m.Platform),
		ExternalID:    m.ExternalID,
		TextEncrypted: textEncrypted,
		SentAt:        m.Timestamp,
		IsFlagged:     m.IsFlagged,
		Compound:      m.Compound,
		ScamScore:     m.ScamScore,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	row.AccountID = null.NewString(m.AccountID, m.AccountID != "")
	row.ChatID = null.NewString(m.ChatID, m.ChatID != "")
	row.ChatName = null.NewString(m.ChatName, m.ChatName != "")
	row.SenderID = null.NewString(m.SenderID, m.SenderID != "")
	row.SenderName = null.NewString(m.SenderName, m.SenderName != "")
	row.Label = null.NewString(string(m.Label), m.Label != "")
	row.Sentiment = null.NewString(m.Sentiment, m.Sentiment != "")
	row.BatchID = null.NewString(m.BatchID, m.BatchID != "")
	if m.RiskScore != nil {
		row.RiskScore = null.Float64From(*m.RiskScore)
	}
	return row
}
