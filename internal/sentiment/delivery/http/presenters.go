package http

import (
	"encoding/json"

	"insight-srv/internal/sentiment"
	"insight-srv/pkg/util"
)

type analyzeReq struct {
	Text string `json:"text"`
}

type messageReq struct {
	Text      string          `json:"text"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
	ChatName  string          `json:"chat_name,omitempty"`
}

type analyzeMessagesReq struct {
	Messages []messageReq `json:"messages" binding:"max=5000"`
}

// toInput tolerates malformed timestamps; they are informational only.
func (r analyzeMessagesReq) toInput() []sentiment.Message {
	return toMessages(r.Messages)
}

type summaryReq struct {
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	JoinedGroups int          `json:"joined_groups" binding:"min=0"`
	Messages     []messageReq `json:"messages" binding:"max=5000"`
}

func (r summaryReq) toUserData(messageCount int) sentiment.UserData {
	return sentiment.UserData{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		MessageCount: messageCount,
		JoinedGroups: r.JoinedGroups,
	}
}

func toMessages(in []messageReq) []sentiment.Message {
	out := make([]sentiment.Message, 0, len(in))
	for _, m := range in {
		msg := sentiment.Message{Text: m.Text, ChatName: m.ChatName}
		if ts, err := util.ParseTimestamp(m.Timestamp); err == nil {
			msg.Timestamp = ts
		}
		out = append(out, msg)
	}
	return out
}

type scoreResp struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Scam     float64 `json:"scam"`
}

type sentimentResp struct {
	Sentiment string    `json:"sentiment"`
	Score     scoreResp `json:"score"`
	Compound  float64   `json:"compound"`
}

func (h *handler) newSentimentResp(r sentiment.SentimentResult) sentimentResp {
	return sentimentResp{
		Sentiment: string(r.Sentiment),
		Score: scoreResp{
			Positive: r.Score.Positive,
			Negative: r.Score.Negative,
			Scam:     r.Score.Scam,
		},
		Compound: r.Compound,
	}
}

type breakdownResp struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

type analysisResp struct {
	OverallSentiment   string        `json:"overall_sentiment"`
	SentimentBreakdown breakdownResp `json:"sentiment_breakdown"`
	ScamRisk           string        `json:"scam_risk"`
	ScamKeywords       []string      `json:"scam_keywords"`
	AvgCompound        float64       `json:"avg_compound"`
	TotalMessages      int           `json:"total_messages"`
	ScamMessageCount   int           `json:"scam_message_count"`
	Summary            string        `json:"summary,omitempty"`
}

func (h *handler) newAnalysisResp(a sentiment.AggregateAnalysis) analysisResp {
	keywords := a.ScamKeywords
	if keywords == nil {
		keywords = []string{}
	}
	return analysisResp{
		OverallSentiment: string(a.OverallSentiment),
		SentimentBreakdown: breakdownResp{
			Positive: a.SentimentBreakdown.Positive,
			Negative: a.SentimentBreakdown.Negative,
			Neutral:  a.SentimentBreakdown.Neutral,
		},
		ScamRisk:         string(a.ScamRisk),
		ScamKeywords:     keywords,
		AvgCompound:      a.AvgCompound,
		TotalMessages:    a.TotalMessages,
		ScamMessageCount: a.ScamMessageCount,
		Summary:          a.Summary,
	}
}

type summaryResp struct {
	Analysis analysisResp `json:"analysis"`
	Summary  string       `json:"summary"`
}
