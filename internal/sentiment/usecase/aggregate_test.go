package usecase

import (
	"reflect"
	"strings"
	"testing"

	"insight-srv/internal/sentiment"
)

func messagesWithScam(total, scam int) []sentiment.Message {
	msgs := make([]sentiment.Message, 0, total)
	for i := 0; i < total; i++ {
		text := "hello there"
		if i < scam {
			text = "claim your prize now"
		}
		msgs = append(msgs, sentiment.Message{Text: text})
	}
	return msgs
}

func TestAnalyzeMessages(t *testing.T) {
	uc := newTestUseCase()

	t.Run("no data", func(t *testing.T) {
		for _, in := range [][]sentiment.Message{nil, {}} {
			got := uc.AnalyzeMessages(in)
			if got.Summary != sentiment.NoDataSummary {
				t.Errorf("Summary = %q, want %q", got.Summary, sentiment.NoDataSummary)
			}
			if got.ScamRisk != sentiment.RiskLow || got.OverallSentiment != sentiment.Neutral {
				t.Errorf("got %v/%v, want Low/Neutral", got.ScamRisk, got.OverallSentiment)
			}
			if got.TotalMessages != 0 || got.ScamMessageCount != 0 || len(got.ScamKeywords) != 0 {
				t.Errorf("counters not zero: %+v", got)
			}
			if got.SentimentBreakdown != (sentiment.Breakdown{}) {
				t.Errorf("breakdown = %+v, want zero", got.SentimentBreakdown)
			}
		}
	})

	t.Run("risk tiers use strict greater-than", func(t *testing.T) {
		tests := []struct {
			scam int
			want sentiment.ScamRisk
		}{
			{4, sentiment.RiskHigh},
			{3, sentiment.RiskMedium},
			{2, sentiment.RiskMedium},
			{1, sentiment.RiskLow},
			{0, sentiment.RiskLow},
		}
		for _, tt := range tests {
			got := uc.AnalyzeMessages(messagesWithScam(10, tt.scam))
			if got.ScamRisk != tt.want {
				t.Errorf("%d/10 scam: ScamRisk = %v, want %v", tt.scam, got.ScamRisk, tt.want)
			}
			if got.ScamMessageCount != tt.scam {
				t.Errorf("ScamMessageCount = %d, want %d", got.ScamMessageCount, tt.scam)
			}
		}
	})

	t.Run("breakdown sums to total", func(t *testing.T) {
		msgs := []sentiment.Message{
			{Text: "great job"},
			{Text: "terrible service"},
			{Text: "meeting at noon"},
			{Text: ""},
			{Text: "love it"},
		}
		got := uc.AnalyzeMessages(msgs)
		b := got.SentimentBreakdown
		if b.Positive+b.Negative+b.Neutral != got.TotalMessages {
			t.Errorf("breakdown %+v does not sum to %d", b, got.TotalMessages)
		}
		if b.Positive != 2 || b.Negative != 1 || b.Neutral != 2 {
			t.Errorf("breakdown = %+v, want {2 1 2}", b)
		}
		if got.Summary != "" {
			t.Errorf("Summary = %q, want empty outside the no-data path", got.Summary)
		}
	})

	t.Run("keywords de-duplicated in first-seen order", func(t *testing.T) {
		msgs := []sentiment.Message{
			{Text: "Send bitcoin to claim"},
			{Text: "claim the PRIZE, bitcoin!"},
			{Text: "urgent"},
		}
		got := uc.AnalyzeMessages(msgs)
		want := []string{"bitcoin", "claim", "prize", "urgent"}
		if !reflect.DeepEqual(got.ScamKeywords, want) {
			t.Errorf("ScamKeywords = %v, want %v", got.ScamKeywords, want)
		}
		if got.ScamRisk != sentiment.RiskHigh {
			t.Errorf("ScamRisk = %v, want High", got.ScamRisk)
		}
	})

	t.Run("average compound", func(t *testing.T) {
		got := uc.AnalyzeMessages([]sentiment.Message{{Text: "good"}, {Text: "bad"}})
		if got.AvgCompound != 0 || got.OverallSentiment != sentiment.Neutral {
			t.Errorf("got avg %v / %v, want 0 / Neutral", got.AvgCompound, got.OverallSentiment)
		}
	})

	t.Run("input not mutated and output repeatable", func(t *testing.T) {
		msgs := []sentiment.Message{{Text: "Verify your OTP"}, {Text: "nice"}}
		before := append([]sentiment.Message(nil), msgs...)
		a := uc.AnalyzeMessages(msgs)
		b := uc.AnalyzeMessages(msgs)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("repeated calls differ")
		}
		if !reflect.DeepEqual(before, msgs) {
			t.Errorf("input mutated")
		}
	})
}

func TestGenerateSummary(t *testing.T) {
	uc := newTestUseCase()
	keywords := []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7"}

	t.Run("high risk lists five keywords", func(t *testing.T) {
		got := uc.GenerateSummary(
			sentiment.UserData{FirstName: "Alex", MessageCount: 42, JoinedGroups: 7},
			sentiment.AggregateAnalysis{ScamRisk: sentiment.RiskHigh, ScamKeywords: keywords},
		)
		for _, want := range []string{"Alex", "42", "7", "k1, k2, k3, k4, k5"} {
			if !strings.Contains(got, want) {
				t.Errorf("summary %q missing %q", got, want)
			}
		}
		if strings.Contains(got, "k6") {
			t.Errorf("summary %q contains a sixth keyword", got)
		}
	})

	t.Run("medium risk lists three keywords", func(t *testing.T) {
		got := uc.GenerateSummary(
			sentiment.UserData{LastName: "Nguyen", MessageCount: 10, JoinedGroups: 2},
			sentiment.AggregateAnalysis{ScamRisk: sentiment.RiskMedium, ScamKeywords: keywords},
		)
		if !strings.Contains(got, "k1, k2, k3") || strings.Contains(got, "k4") {
			t.Errorf("summary %q should list exactly k1..k3", got)
		}
		if !strings.Contains(got, "Nguyen") {
			t.Errorf("summary %q should fall back to last name", got)
		}
	})

	t.Run("fewer keywords than the limit", func(t *testing.T) {
		got := uc.GenerateSummary(
			sentiment.UserData{FirstName: "Sam"},
			sentiment.AggregateAnalysis{ScamRisk: sentiment.RiskHigh, ScamKeywords: []string{"otp"}},
		)
		if !strings.Contains(got, "otp") {
			t.Errorf("summary %q missing keyword", got)
		}
	})

	t.Run("safe uses default name", func(t *testing.T) {
		got := uc.GenerateSummary(
			sentiment.UserData{MessageCount: 3, JoinedGroups: 1},
			sentiment.AggregateAnalysis{ScamRisk: sentiment.RiskLow, ScamKeywords: keywords},
		)
		if !strings.Contains(got, sentiment.DefaultDisplayName) {
			t.Errorf("summary %q missing default name", got)
		}
		if strings.Contains(got, "k1") {
			t.Errorf("safe summary %q should not list keywords", got)
		}
	})
}
