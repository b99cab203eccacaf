package sentiment

//go:generate mockery --name UseCase
type UseCase interface {
	// AnalyzeSentiment scores a single text. Empty text yields a Neutral zero result.
	AnalyzeSentiment(text string) SentimentResult
	AnalyzeMessages(messages []Message) AggregateAnalysis
	GenerateSummary(user UserData, analysis AggregateAnalysis) string
}
