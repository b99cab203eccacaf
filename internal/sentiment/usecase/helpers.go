package usecase

import (
	"regexp"
	"strings"

	"insight-srv/internal/sentiment"
)

var (
	nonWord = regexp.MustCompile(`\W`)

	// whitespace also covers \v and the Unicode spaces, which \s alone does not.
	whitespace = regexp.MustCompile(`[\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]+`)
)

// tokenize lowercases text, splits on whitespace runs and strips non-word characters.
// Leading or trailing whitespace yields an empty edge token, and tokens that end
// up empty are kept so they still count as words.
func tokenize(text string) []string {
	fields := whitespace.Split(strings.ToLower(text), -1)
	for i, f := range fields {
		fields[i] = nonWord.ReplaceAllString(f, "")
	}
	return fields
}

func classify(compound float64) sentiment.Sentiment {
	switch {
	case compound >= sentiment.PositiveThreshold:
		return sentiment.Positive
	case compound <= sentiment.NegativeThreshold:
		return sentiment.Negative
	default:
		return sentiment.Neutral
	}
}

func scamRisk(scamCount, total int) sentiment.ScamRisk {
	n := float64(total)
	switch {
	case float64(scamCount) > sentiment.HighRiskRatio*n:
		return sentiment.RiskHigh
	case float64(scamCount) > sentiment.MediumRiskRatio*n:
		return sentiment.RiskMedium
	default:
		return sentiment.RiskLow
	}
}

func displayName(u sentiment.UserData) string {
	if name := strings.TrimSpace(u.FirstName); name != "" {
		return name
	}
	if name := strings.TrimSpace(u.LastName); name != "" {
		return name
	}
	return sentiment.DefaultDisplayName
}

func firstN(keywords []string, n int) []string {
	if len(keywords) < n {
		return keywords
	}
	return keywords[:n]
}
