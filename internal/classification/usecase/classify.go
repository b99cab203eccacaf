package usecase

import (
	"insight-srv/internal/classification"
	"insight-srv/internal/model"
)

func (uc *implUseCase) ClassifyMessagesByType(messages []model.Message) classification.Report {
	cats := classification.Categories{
		Safe:       []model.Message{},
		Fraud:      []model.Message{},
		Sensitive:  []model.Message{},
		Spam:       []model.Message{},
		Other:      []model.Message{},
		Flagged:    []model.Message{},
		HighRisk:   []model.Message{},
		MediumRisk: []model.Message{},
		LowRisk:    []model.Message{},
	}
	var stats classification.Stats

	for _, m := range messages {
		stats.Total++

		switch model.ParseLabel(string(m.Label)) {
		case model.LabelFraud:
			cats.Fraud = append(cats.Fraud, m)
			stats.Fraud++
		case model.LabelSensitive:
			cats.Sensitive = append(cats.Sensitive, m)
			stats.Sensitive++
		case model.LabelSpam:
			cats.Spam = append(cats.Spam, m)
			stats.Spam++
		case model.LabelSafe:
			cats.Safe = append(cats.Safe, m)
			stats.Safe++
		default:
			cats.Other = append(cats.Other, m)
			stats.Other++
		}

		if m.IsFlagged {
			cats.Flagged = append(cats.Flagged, m)
			stats.Flagged++
		}

		if m.RiskScore == nil {
			continue
		}
		switch score := *m.RiskScore; {
		case score >= classification.HighRiskMin:
			cats.HighRisk = append(cats.HighRisk, m)
			stats.HighRisk++
		case score >= classification.MediumRiskMin:
			cats.MediumRisk = append(cats.MediumRisk, m)
			stats.MediumRisk++
		default:
			cats.LowRisk = append(cats.LowRisk, m)
			stats.LowRisk++
		}
	}

	return classification.Report{Categories: cats, Stats: stats}
}
