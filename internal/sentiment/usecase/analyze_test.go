package usecase

import (
	"math"
	"reflect"
	"testing"

	"insight-srv/internal/sentiment"
	"insight-srv/pkg/log"
)

func newTestUseCase() sentiment.UseCase {
	return New(log.NewNop())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeSentiment(t *testing.T) {
	uc := newTestUseCase()

	t.Run("empty text", func(t *testing.T) {
		got := uc.AnalyzeSentiment("")
		want := sentiment.SentimentResult{Sentiment: sentiment.Neutral}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("AnalyzeSentiment(\"\") = %+v, want %+v", got, want)
		}
	})

	t.Run("whitespace only", func(t *testing.T) {
		got := uc.AnalyzeSentiment("   \n\t ")
		if got.Sentiment != sentiment.Neutral || got.Compound != 0 || got.Score != (sentiment.Score{}) {
			t.Errorf("AnalyzeSentiment(blank) = %+v", got)
		}
	})

	t.Run("all positive", func(t *testing.T) {
		got := uc.AnalyzeSentiment("good good good")
		if !almostEqual(got.Compound, 1.0) {
			t.Errorf("Compound = %v, want 1.0", got.Compound)
		}
		if got.Sentiment != sentiment.Positive {
			t.Errorf("Sentiment = %v, want Positive", got.Sentiment)
		}
	})

	t.Run("all scam", func(t *testing.T) {
		got := uc.AnalyzeSentiment("scam scam scam")
		if got.Compound != 0 {
			t.Errorf("Compound = %v, want 0", got.Compound)
		}
		if got.Sentiment != sentiment.Neutral {
			t.Errorf("Sentiment = %v, want Neutral", got.Sentiment)
		}
		if !almostEqual(got.Score.Scam, 1.0) {
			t.Errorf("Score.Scam = %v, want 1.0", got.Score.Scam)
		}
	})

	t.Run("punctuation and case", func(t *testing.T) {
		got := uc.AnalyzeSentiment("GOOD!!! Bad...")
		if !almostEqual(got.Score.Positive, 0.5) || !almostEqual(got.Score.Negative, 0.5) {
			t.Errorf("Score = %+v, want 0.5/0.5", got.Score)
		}
		if got.Sentiment != sentiment.Neutral {
			t.Errorf("Sentiment = %v, want Neutral", got.Sentiment)
		}
	})

	t.Run("punctuation token counts as a word", func(t *testing.T) {
		got := uc.AnalyzeSentiment("good !!!")
		if !almostEqual(got.Score.Positive, 0.5) {
			t.Errorf("Score.Positive = %v, want 0.5", got.Score.Positive)
		}
	})

	t.Run("negative", func(t *testing.T) {
		got := uc.AnalyzeSentiment("this is a terrible awful experience")
		if got.Sentiment != sentiment.Negative {
			t.Errorf("Sentiment = %v, want Negative", got.Sentiment)
		}
		if !almostEqual(got.Compound, -2.0/6.0) {
			t.Errorf("Compound = %v, want %v", got.Compound, -2.0/6.0)
		}
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		// 1 positive word out of 20 tokens gives exactly 0.05
		text := "good"
		for i := 0; i < 19; i++ {
			text += " hello"
		}
		got := uc.AnalyzeSentiment(text)
		if got.Sentiment != sentiment.Positive {
			t.Errorf("compound %v should classify Positive", got.Compound)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := uc.AnalyzeSentiment("Urgent: verify your bank account now")
		b := uc.AnalyzeSentiment("Urgent: verify your bank account now")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("results differ: %+v vs %+v", a, b)
		}
	})
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		compound float64
		want     sentiment.Sentiment
	}{
		{0.05, sentiment.Positive},
		{0.0499, sentiment.Neutral},
		{0, sentiment.Neutral},
		{-0.0499, sentiment.Neutral},
		{-0.05, sentiment.Negative},
		{-1, sentiment.Negative},
	}
	for _, tt := range tests {
		if got := classify(tt.compound); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.compound, got, tt.want)
		}
	}
}

func TestLexiconsDisjoint(t *testing.T) {
	for w := range sentiment.ScamWords {
		if sentiment.PositiveWords.Has(w) {
			t.Errorf("scam word %q is also positive", w)
		}
		if sentiment.NegativeWords.Has(w) {
			t.Errorf("scam word %q is also negative", w)
		}
	}
	for w := range sentiment.PositiveWords {
		if sentiment.NegativeWords.Has(w) {
			t.Errorf("word %q is both positive and negative", w)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: "Good Day", want: []string{"good", "day"}},
		{text: " good", want: []string{"", "good"}},
		{text: " good ! ", want: []string{"", "good", "", ""}},
		{text: "win prize!!", want: []string{"win", "prize"}},
		{text: "a\t\n b", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeSentimentEdgeWhitespace(t *testing.T) {
	uc := newTestUseCase()

	got := uc.AnalyzeSentiment(" good")
	if !almostEqual(got.Score.Positive, 0.5) {
		t.Errorf("Score.Positive = %v, want 0.5", got.Score.Positive)
	}
	if !almostEqual(got.Compound, 0.5) || got.Sentiment != sentiment.Positive {
		t.Errorf("AnalyzeSentiment(\" good\") = %+v", got)
	}
}
