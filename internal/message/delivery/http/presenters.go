package http

import (
	"insight-srv/internal/classification"
	"insight-srv/internal/message"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/paginator"
	"insight-srv/pkg/response"
)

// --- Requests ---

type listReq struct {
	Platform  string `form:"platform"`
	AccountID string `form:"account_id"`
	ChatID    string `form:"chat_id"`
	Label     string `form:"label"`
	Flagged   *bool  `form:"flagged"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (r listReq) toInput() message.ListInput {
	return message.ListInput{
		Platform:  r.Platform,
		AccountID: r.AccountID,
		ChatID:    r.ChatID,
		Label:     r.Label,
		Flagged:   r.Flagged,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type classifyReq struct {
	Platform  string `form:"platform"`
	AccountID string `form:"account_id"`
	ChatID    string `form:"chat_id"`
}

func (r classifyReq) toInput() message.ClassifyInput {
	return message.ClassifyInput{
		Platform:  r.Platform,
		AccountID: r.AccountID,
		ChatID:    r.ChatID,
	}
}

type setFlagReq struct {
	MessageID string `json:"-"`
	Flagged   *bool  `json:"flagged" binding:"required"`
}

func (r setFlagReq) toInput() message.SetFlagInput {
	return message.SetFlagInput{
		MessageID: r.MessageID,
		Flagged:   *r.Flagged,
	}
}

type analyzeAccountReq struct {
	AccountID string
}

func (r analyzeAccountReq) toInput() message.AnalyzeAccountInput {
	return message.AnalyzeAccountInput{AccountID: r.AccountID}
}

type analyzePlatformReq struct {
	Platform string
}

func (r analyzePlatformReq) toInput() message.AnalyzePlatformInput {
	return message.AnalyzePlatformInput{Platform: r.Platform}
}

// --- Responses ---

type messageResp struct {
	ID         string            `json:"id"`
	Platform   string            `json:"platform"`
	AccountID  string            `json:"account_id,omitempty"`
	ExternalID string            `json:"external_id"`
	ChatID     string            `json:"chat_id,omitempty"`
	ChatName   string            `json:"chat_name,omitempty"`
	SenderID   string            `json:"sender_id,omitempty"`
	SenderName string            `json:"sender_name,omitempty"`
	Text       string            `json:"text"`
	Timestamp  response.DateTime `json:"timestamp"`
	Label      string            `json:"label"`
	IsFlagged  bool              `json:"is_flagged"`
	RiskScore  *float64          `json:"risk_score,omitempty"`
	Sentiment  string            `json:"sentiment,omitempty"`
	Compound   float64           `json:"compound"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:         m.ID,
		Platform:   m.Platform.String(),
		AccountID:  m.AccountID,
		ExternalID: m.ExternalID,
		ChatID:     m.ChatID,
		ChatName:   m.ChatName,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Text:       m.Text,
		Timestamp:  response.DateTime(m.Timestamp),
		Label:      string(m.Label),
		IsFlagged:  m.IsFlagged,
		RiskScore:  m.RiskScore,
		Sentiment:  m.Sentiment,
		Compound:   m.Compound,
	}
}

func newMessageResps(msgs []model.Message) []messageResp {
	out := make([]messageResp, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, newMessageResp(m))
	}
	return out
}

type listResp struct {
	Messages  []messageResp               `json:"messages"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(o message.ListOutput) listResp {
	return listResp{
		Messages:  newMessageResps(o.Messages),
		Paginator: o.Paginator.ToResponse(),
	}
}

type categoriesResp struct {
	Safe       []messageResp `json:"safe"`
	Fraud      []messageResp `json:"fraud"`
	Sensitive  []messageResp `json:"sensitive"`
	Spam       []messageResp `json:"spam"`
	Other      []messageResp `json:"other"`
	Flagged    []messageResp `json:"flagged"`
	HighRisk   []messageResp `json:"high_risk"`
	MediumRisk []messageResp `json:"medium_risk"`
	LowRisk    []messageResp `json:"low_risk"`
}

type statsResp struct {
	Total      int `json:"total"`
	Safe       int `json:"safe"`
	Fraud      int `json:"fraud"`
	Sensitive  int `json:"sensitive"`
	Spam       int `json:"spam"`
	Other      int `json:"other"`
	Flagged    int `json:"flagged"`
	HighRisk   int `json:"high_risk"`
	MediumRisk int `json:"medium_risk"`
	LowRisk    int `json:"low_risk"`
}

func newStatsResp(s classification.Stats) statsResp {
	return statsResp{
		Total:      s.Total,
		Safe:       s.Safe,
		Fraud:      s.Fraud,
		Sensitive:  s.Sensitive,
		Spam:       s.Spam,
		Other:      s.Other,
		Flagged:    s.Flagged,
		HighRisk:   s.HighRisk,
		MediumRisk: s.MediumRisk,
		LowRisk:    s.LowRisk,
	}
}

type classificationResp struct {
	Categories categoriesResp `json:"categories"`
	Stats      statsResp      `json:"stats"`
}

func newClassificationResp(r classification.Report) classificationResp {
	c := r.Categories
	return classificationResp{
		Categories: categoriesResp{
			Safe:       newMessageResps(c.Safe),
			Fraud:      newMessageResps(c.Fraud),
			Sensitive:  newMessageResps(c.Sensitive),
			Spam:       newMessageResps(c.Spam),
			Other:      newMessageResps(c.Other),
			Flagged:    newMessageResps(c.Flagged),
			HighRisk:   newMessageResps(c.HighRisk),
			MediumRisk: newMessageResps(c.MediumRisk),
			LowRisk:    newMessageResps(c.LowRisk),
		},
		Stats: newStatsResp(r.Stats),
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

func newAnalysisResp(a sentiment.AggregateAnalysis) analysisResp {
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

type accountResp struct {
	ID           string `json:"id"`
	Platform     string `json:"platform"`
	ExternalID   string `json:"external_id"`
	Username     string `json:"username,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	JoinedGroups int    `json:"joined_groups"`
}

type accountAnalysisResp struct {
	Account  accountResp  `json:"account"`
	Analysis analysisResp `json:"analysis"`
	Summary  string       `json:"summary"`
	Cached   bool         `json:"cached"`
}

func (h *handler) newAccountAnalysisResp(o message.AccountAnalysisOutput) accountAnalysisResp {
	return accountAnalysisResp{
		Account: accountResp{
			ID:           o.Account.ID,
			Platform:     o.Account.Platform.String(),
			ExternalID:   o.Account.ExternalID,
			Username:     o.Account.Username,
			FirstName:    o.Account.FirstName,
			LastName:     o.Account.LastName,
			JoinedGroups: o.Account.JoinedGroups,
		},
		Analysis: newAnalysisResp(o.Analysis),
		Summary:  o.Summary,
		Cached:   o.CacheHit,
	}
}

type platformAnalysisResp struct {
	Platform       string             `json:"platform"`
	Analysis       analysisResp       `json:"analysis"`
	Classification classificationResp `json:"classification"`
}

func (h *handler) newPlatformAnalysisResp(o message.PlatformAnalysisOutput) platformAnalysisResp {
	return platformAnalysisResp{
		Platform:       o.Platform.String(),
		Analysis:       newAnalysisResp(o.Analysis),
		Classification: newClassificationResp(o.Classification),
	}
}

type platformOverviewResp struct {
	Platform string       `json:"platform"`
	Stats    statsResp    `json:"stats"`
	Analysis analysisResp `json:"analysis"`
}

type overviewResp struct {
	Platforms []platformOverviewResp `json:"platforms"`
	Totals    statsResp              `json:"totals"`
}

func (h *handler) newOverviewResp(o message.OverviewOutput) overviewResp {
	cards := make([]platformOverviewResp, 0, len(o.Platforms))
	for _, p := range o.Platforms {
		cards = append(cards, platformOverviewResp{
			Platform: p.Platform.String(),
			Stats:    newStatsResp(p.Stats),
			Analysis: newAnalysisResp(p.Analysis),
		})
	}
	return overviewResp{
		Platforms: cards,
		Totals:    newStatsResp(o.Totals),
	}
}
