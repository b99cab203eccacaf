package sentiment

import "time"

type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

type ScamRisk string

const (
	RiskLow    ScamRisk = "Low"
	RiskMedium ScamRisk = "Medium"
	RiskHigh   ScamRisk = "High"
)

// Fixed cut-offs. Comparisons: compound >= PositiveThreshold, compound <= NegativeThreshold,
// scam ratios use strict >.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05

	HighRiskRatio   = 0.3
	MediumRiskRatio = 0.1

	HighRiskKeywordLimit   = 5
	MediumRiskKeywordLimit = 3

	DefaultDisplayName = "User"
	NoDataSummary      = "No messages available for analysis."
)

// Score holds per-lexicon token ratios in [0,1].
type Score struct {
	Positive float64
	Negative float64
	Scam     float64
}

type SentimentResult struct {
	Sentiment Sentiment
	Score     Score
	Compound  float64
}

// Message is the projection of a stored chat record that the summarizer reads.
type Message struct {
	Text      string
	Timestamp time.Time
	ChatName  string
}

type Breakdown struct {
	Positive int
	Negative int
	Neutral  int
}

type AggregateAnalysis struct {
	OverallSentiment   Sentiment
	SentimentBreakdown Breakdown
	ScamRisk           ScamRisk
	// ScamKeywords are de-duplicated, in first-seen order.
	ScamKeywords     []string
	AvgCompound      float64
	TotalMessages    int
	ScamMessageCount int
	Summary          string
}

// UserData is the account profile interpolated into a summary.
type UserData struct {
	FirstName    string
	LastName     string
	MessageCount int
	JoinedGroups int
}
