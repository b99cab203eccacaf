package usecase

import "insight-srv/internal/sentiment"

func (uc *implUseCase) AnalyzeSentiment(text string) sentiment.SentimentResult {
	res, _ := analyze(text)
	return res
}

// analyze also returns the scam tokens it saw, in order, for the aggregate keyword list.
func analyze(text string) (sentiment.SentimentResult, []string) {
	if text == "" {
		return sentiment.SentimentResult{Sentiment: sentiment.Neutral}, nil
	}

	tokens := tokenize(text)
	total := len(tokens)
	if total == 0 {
		return sentiment.SentimentResult{Sentiment: sentiment.Neutral}, nil
	}

	var pos, neg int
	var scamTokens []string
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if sentiment.PositiveWords.Has(tok) {
			pos++
		}
		if sentiment.NegativeWords.Has(tok) {
			neg++
		}
		if sentiment.ScamWords.Has(tok) {
			scamTokens = append(scamTokens, tok)
		}
	}

	score := sentiment.Score{
		Positive: float64(pos) / float64(total),
		Negative: float64(neg) / float64(total),
		Scam:     float64(len(scamTokens)) / float64(total),
	}
	compound := score.Positive - score.Negative

	return sentiment.SentimentResult{
		Sentiment: classify(compound),
		Score:     score,
		Compound:  compound,
	}, scamTokens
}
