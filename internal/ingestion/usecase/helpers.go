package usecase

import (
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"insight-srv/internal/ingestion"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/util"
)

var (
	errMissingID      = errors.New("missing id")
	errMissingContent = errors.New("missing text and label")
)

func (r lineRecord) text() string {
	if r.record.Text != "" {
		return r.record.Text
	}
	return r.record.MessageText
}

// validateRecord - A record needs an id and either text or a label.
func validateRecord(r lineRecord) error {
	if strings.TrimSpace(r.record.ID.String()) == "" {
		return errMissingID
	}
	if strings.TrimSpace(r.text()) == "" && strings.TrimSpace(r.record.Label) == "" {
		return errMissingContent
	}
	return nil
}

// parseRiskScore - Only JSON numbers count; strings, booleans and null are missing.
func parseRiskScore(raw json.RawMessage) *float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s[0] == '"' {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseLabel(raw string) model.Label {
	return model.ParseLabel(strings.ToLower(strings.TrimSpace(raw)))
}

// toMessage - Map a validated record to a snapshot. fallback is used when the
// record has no readable timestamp.
func toMessage(input ingestion.IngestInput, platform model.Platform, r lineRecord, fallback time.Time) model.Message {
	ts, err := util.ParseTimestamp(r.record.Timestamp)
	if err != nil {
		ts = fallback
	}

	return model.Message{
		OwnerID:    input.OwnerID,
		Platform:   platform,
		AccountID:  input.AccountID,
		ExternalID: strings.TrimSpace(r.record.ID.String()),
		ChatID:     r.record.ChatID.String(),
		ChatName:   r.record.ChatName,
		SenderID:   r.record.SenderID.String(),
		SenderName: r.record.SenderName,
		Text:       r.text(),
		Timestamp:  ts,
		Label:      parseLabel(r.record.Label),
		IsFlagged:  r.record.IsFlagged,
		RiskScore:  parseRiskScore(r.record.RiskScore),
		BatchID:    input.BatchID,
	}
}

func toAccount(platform model.Platform, p *ingestion.AccountProfile) *model.Account {
	if p == nil || p.ExternalID == "" {
		return nil
	}
	return &model.Account{
		Platform:     platform,
		ExternalID:   p.ExternalID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		JoinedGroups: p.JoinedGroups,
	}
}

func toSentimentMessages(msgs []model.Message) []sentiment.Message {
	out := make([]sentiment.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, sentiment.Message{Text: m.Text, Timestamp: m.Timestamp, ChatName: m.ChatName})
	}
	return out
}

func sortSkips(skips []ingestion.SkippedRecord) []ingestion.SkippedRecord {
	slices.SortFunc(skips, func(a, b ingestion.SkippedRecord) int {
		return a.Line - b.Line
	})
	return skips
}
