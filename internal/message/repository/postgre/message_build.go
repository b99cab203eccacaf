package postgre

import (
	"insight-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const upsertMessageQuery = `INSERT INTO ` + tableMessages + ` (` + messageColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
ON CONFLICT (owner_id, platform, external_id) DO UPDATE SET
	account_id = EXCLUDED.account_id,
	chat_id = EXCLUDED.chat_id,
	chat_name = EXCLUDED.chat_name,
	sender_id = EXCLUDED.sender_id,
	sender_name = EXCLUDED.sender_name,
	text_encrypted = EXCLUDED.text_encrypted,
	sent_at = EXCLUDED.sent_at,
	label = EXCLUDED.label,
	is_flagged = ` + tableMessages + `.is_flagged OR EXCLUDED.is_flagged,
	risk_score = EXCLUDED.risk_score,
	sentiment = EXCLUDED.sentiment,
	compound = EXCLUDED.compound,
	scam_score = EXCLUDED.scam_score,
	batch_id = EXCLUDED.batch_id,
	updated_at = EXCLUDED.updated_at`

func scanMessageRow(s rowScanner) (model.MessageRow, error) {
	var row model.MessageRow
	err := s.Scan(
		&row.ID,
		&row.OwnerID,
		&row.Platform,
		&row.AccountID,
		&row.ExternalID,
		&row.ChatID,
		&row.ChatName,
		&row.SenderID,
		&row.SenderName,
		&row.TextEncrypted,
		&row.SentAt,
		&row.Label,
		&row.IsFlagged,
		&row.RiskScore,
		&row.Sentiment,
		&row.Compound,
		&row.ScamScore,
		&row.BatchID,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}

// messageRowArgs - Argument list matching messageColumns.
func messageRowArgs(row model.MessageRow) []any {
	return []any{
		row.ID,
		row.OwnerID,
		row.Platform,
		row.AccountID,
		row.ExternalID,
		row.ChatID,
		row.ChatName,
		row.SenderID,
		row.SenderName,
		row.TextEncrypted,
		row.SentAt,
		row.Label,
		row.IsFlagged,
		row.RiskScore,
		row.Sentiment,
		row.Compound,
		row.ScamScore,
		row.BatchID,
		row.CreatedAt,
		row.UpdatedAt,
	}
}

func scanAccountRow(s rowScanner) (model.AccountRow, error) {
	var row model.AccountRow
	err := s.Scan(
		&row.ID,
		&row.OwnerID,
		&row.Platform,
		&row.ExternalID,
		&row.Username,
		&row.FirstName,
		&row.LastName,
		&row.JoinedGroups,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}
