package usecase

import "insight-srv/internal/sentiment"

func (uc *implUseCase) AnalyzeMessages(messages []sentiment.Message) sentiment.AggregateAnalysis {
	if len(messages) == 0 {
		return sentiment.AggregateAnalysis{
			OverallSentiment: sentiment.Neutral,
			ScamRisk:         sentiment.RiskLow,
			ScamKeywords:     []string{},
			Summary:          sentiment.NoDataSummary,
		}
	}

	var (
		sum       float64
		breakdown sentiment.Breakdown
		scamCount int
		seen      = make(map[string]struct{})
		keywords  = make([]string, 0)
	)

	for _, m := range messages {
		res, scamTokens := analyze(m.Text)
		sum += res.Compound

		switch res.Sentiment {
		case sentiment.Positive:
			breakdown.Positive++
		case sentiment.Negative:
			breakdown.Negative++
		default:
			breakdown.Neutral++
		}

		if res.Score.Scam > 0 {
			scamCount++
		}
		for _, tok := range scamTokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			keywords = append(keywords, tok)
		}
	}

	avg := sum / float64(len(messages))

	return sentiment.AggregateAnalysis{
		OverallSentiment:   classify(avg),
		SentimentBreakdown: breakdown,
		ScamRisk:           scamRisk(scamCount, len(messages)),
		ScamKeywords:       keywords,
		AvgCompound:        avg,
		TotalMessages:      len(messages),
		ScamMessageCount:   scamCount,
	}
}
