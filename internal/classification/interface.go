package classification

import "insight-srv/internal/model"

//go:generate mockery --name UseCase
type UseCase interface {
	// ClassifyMessagesByType buckets messages by label, flag and risk score. It never fails.
	ClassifyMessagesByType(messages []model.Message) Report
}
