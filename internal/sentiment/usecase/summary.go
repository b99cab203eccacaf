package usecase

import (
	"fmt"
	"strings"

	"insight-srv/internal/sentiment"
)

const (
	highRiskTemplate = "HIGH RISK: %s's account shows strong scam indicators. " +
		"Across %d messages in %d groups, suspicious keywords were detected: %s. " +
		"Immediate review of this account is recommended."
	mediumRiskTemplate = "MODERATE RISK: %s has %d messages across %d groups with some potential scam indicators (%s). " +
		"Continued monitoring is advised."
	safeTemplate = "LOW RISK: %s's account appears safe. " +
		"%d messages across %d groups were analyzed and no significant scam activity was found."
)

func (uc *implUseCase) GenerateSummary(user sentiment.UserData, analysis sentiment.AggregateAnalysis) string {
	name := displayName(user)

	switch analysis.ScamRisk {
	case sentiment.RiskHigh:
		kw := strings.Join(firstN(analysis.ScamKeywords, sentiment.HighRiskKeywordLimit), ", ")
		return fmt.Sprintf(highRiskTemplate, name, user.MessageCount, user.JoinedGroups, kw)
	case sentiment.RiskMedium:
		kw := strings.Join(firstN(analysis.ScamKeywords, sentiment.MediumRiskKeywordLimit), ", ")
		return fmt.Sprintf(mediumRiskTemplate, name, user.MessageCount, user.JoinedGroups, kw)
	default:
		return fmt.Sprintf(safeTemplate, name, user.MessageCount, user.JoinedGroups)
	}
}
