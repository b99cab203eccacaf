package usecase

import (
	"context"
	"errors"
	"testing"

	classificationUC "insight-srv/internal/classification/usecase"
	"insight-srv/internal/message"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
	sentimentUC "insight-srv/internal/sentiment/usecase"
	"insight-srv/pkg/log"
	"insight-srv/pkg/paginator"
)

const owner = "owner-1"

func score(v float64) *float64 { return &v }

func newTestUseCase(repo *fakeRepo, cache *fakeCache) message.UseCase {
	l := log.NewNop()
	return New(l, repo, cache, sentimentUC.New(l), classificationUC.New())
}

func seedMessages() []model.Message {
	return []model.Message{
		{ID: "m1", OwnerID: owner, Platform: model.PlatformTelegram, AccountID: "acc-1", ChatID: "c1", Text: "great day friends", Label: model.LabelSafe},
		{ID: "m2", OwnerID: owner, Platform: model.PlatformTelegram, AccountID: "acc-1", ChatID: "c2", Text: "urgent send bitcoin now", Label: model.LabelFraud, IsFlagged: true, RiskScore: score(8)},
		{ID: "m3", OwnerID: owner, Platform: model.PlatformWhatsApp, ChatID: "c3", Text: "buy cheap followers", Label: model.LabelSpam, RiskScore: score(4)},
		{ID: "m4", OwnerID: "someone-else", Platform: model.PlatformTelegram, Text: "hello", Label: model.LabelSafe},
	}
}

func TestList(t *testing.T) {
	sc := model.Scope{UserID: owner}

	t.Run("filters and paginates", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{messages: seedMessages()}, newFakeCache())
		out, err := uc.List(context.Background(), sc, message.ListInput{
			Platform:      "Telegram",
			PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 1},
		})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(out.Messages) != 1 || out.Paginator.Total != 2 {
			t.Errorf("List() = %d messages, total %d; want 1, 2", len(out.Messages), out.Paginator.Total)
		}
	})

	t.Run("label filter", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{messages: seedMessages()}, newFakeCache())
		out, err := uc.List(context.Background(), sc, message.ListInput{Label: " FRAUD "})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(out.Messages) != 1 || out.Messages[0].ID != "m2" {
			t.Errorf("List() = %+v, want only m2", out.Messages)
		}
		if out.Paginator.PerPage != paginator.DefaultLimit {
			t.Errorf("PerPage = %d, want %d", out.Paginator.PerPage, paginator.DefaultLimit)
		}
	})

	t.Run("invalid platform", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, newFakeCache())
		_, err := uc.List(context.Background(), sc, message.ListInput{Platform: "myspace"})
		if !errors.Is(err, message.ErrInvalidPlatform) {
			t.Errorf("List() error = %v, want ErrInvalidPlatform", err)
		}
	})

	t.Run("invalid label", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, newFakeCache())
		_, err := uc.List(context.Background(), sc, message.ListInput{Label: "phishing"})
		if !errors.Is(err, message.ErrInvalidLabel) {
			t.Errorf("List() error = %v, want ErrInvalidLabel", err)
		}
	})
}

func TestClassify(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{messages: seedMessages()}, newFakeCache())
	rpt, err := uc.Classify(context.Background(), model.Scope{UserID: owner}, message.ClassifyInput{Platform: "telegram"})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if rpt.Stats.Total != 2 || rpt.Stats.Safe != 1 || rpt.Stats.Fraud != 1 || rpt.Stats.Flagged != 1 || rpt.Stats.HighRisk != 1 {
		t.Errorf("Classify() stats = %+v", rpt.Stats)
	}
}

func TestSetFlag(t *testing.T) {
	sc := model.Scope{UserID: owner}

	t.Run("updates and invalidates", func(t *testing.T) {
		cache := newFakeCache()
		uc := newTestUseCase(&fakeRepo{messages: seedMessages()}, cache)
		m, err := uc.SetFlag(context.Background(), sc, message.SetFlagInput{MessageID: "m1", Flagged: true})
		if err != nil {
			t.Fatalf("SetFlag() error = %v", err)
		}
		if !m.IsFlagged {
			t.Error("SetFlag() returned unflagged message")
		}
		if len(cache.invalidated) != 1 || cache.invalidated[0] != owner {
			t.Errorf("invalidated = %v, want [%s]", cache.invalidated, owner)
		}
	})

	t.Run("other owner is not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{messages: seedMessages()}, newFakeCache())
		_, err := uc.SetFlag(context.Background(), sc, message.SetFlagInput{MessageID: "m4", Flagged: true})
		if !errors.Is(err, message.ErrMessageNotFound) {
			t.Errorf("SetFlag() error = %v, want ErrMessageNotFound", err)
		}
	})
}

func TestUpsertBatch(t *testing.T) {
	sc := model.SystemScope(owner)

	t.Run("empty batch", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, newFakeCache())
		_, err := uc.UpsertBatch(context.Background(), sc, message.UpsertBatchInput{})
		if !errors.Is(err, message.ErrEmptyBatch) {
			t.Errorf("UpsertBatch() error = %v, want ErrEmptyBatch", err)
		}
	})

	t.Run("stamps owner and account", func(t *testing.T) {
		repo := &fakeRepo{}
		cache := newFakeCache()
		uc := newTestUseCase(repo, cache)
		out, err := uc.UpsertBatch(context.Background(), sc, message.UpsertBatchInput{
			Account:  &model.Account{Platform: model.PlatformTelegram, ExternalID: "42", FirstName: "Ana"},
			Messages: []model.Message{{ExternalID: "1", Text: "hi"}, {ExternalID: "2", Text: "yo"}},
		})
		if err != nil {
			t.Fatalf("UpsertBatch() error = %v", err)
		}
		if out.Stored != 2 {
			t.Errorf("Stored = %d, want 2", out.Stored)
		}
		for _, m := range repo.upserted {
			if m.OwnerID != owner || m.AccountID != "acc-42" {
				t.Errorf("message %s has owner %q account %q", m.ExternalID, m.OwnerID, m.AccountID)
			}
		}
		if len(cache.invalidated) != 1 {
			t.Errorf("invalidated = %v, want one call", cache.invalidated)
		}
	})
}

func TestAnalyzeAccount(t *testing.T) {
	sc := model.Scope{UserID: owner}

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, newFakeCache())
		_, err := uc.AnalyzeAccount(context.Background(), sc, message.AnalyzeAccountInput{AccountID: "nope"})
		if !errors.Is(err, message.ErrAccountNotFound) {
			t.Errorf("AnalyzeAccount() error = %v, want ErrAccountNotFound", err)
		}
	})

	t.Run("summary and cache", func(t *testing.T) {
		repo := &fakeRepo{
			messages: seedMessages(),
			accounts: map[string]model.Account{"acc-1": {ID: "acc-1", OwnerID: owner, FirstName: "Ana"}},
			chats:    2,
		}
		uc := newTestUseCase(repo, newFakeCache())

		first, err := uc.AnalyzeAccount(context.Background(), sc, message.AnalyzeAccountInput{AccountID: "acc-1"})
		if err != nil {
			t.Fatalf("AnalyzeAccount() error = %v", err)
		}
		if first.CacheHit {
			t.Error("first call should not be a cache hit")
		}
		if first.Analysis.TotalMessages != 2 {
			t.Errorf("TotalMessages = %d, want 2", first.Analysis.TotalMessages)
		}
		if first.Analysis.ScamRisk != sentiment.RiskHigh {
			t.Errorf("ScamRisk = %s, want High", first.Analysis.ScamRisk)
		}
		if first.Summary == "" || first.Analysis.Summary != first.Summary {
			t.Errorf("Summary = %q, analysis summary = %q", first.Summary, first.Analysis.Summary)
		}

		second, err := uc.AnalyzeAccount(context.Background(), sc, message.AnalyzeAccountInput{AccountID: "acc-1"})
		if err != nil {
			t.Fatalf("AnalyzeAccount() error = %v", err)
		}
		if !second.CacheHit {
			t.Error("second call should be served from cache")
		}
		if repo.findCalls != 1 {
			t.Errorf("FindMessages called %d times, want 1", repo.findCalls)
		}
		if second.Summary != first.Summary {
			t.Errorf("cached summary = %q, want %q", second.Summary, first.Summary)
		}
	})
}

func TestAnalyzePlatform(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{messages: seedMessages()}, newFakeCache())

	out, err := uc.AnalyzePlatform(context.Background(), model.Scope{UserID: owner}, message.AnalyzePlatformInput{Platform: "whatsapp"})
	if err != nil {
		t.Fatalf("AnalyzePlatform() error = %v", err)
	}
	if out.Analysis.TotalMessages != 1 || out.Classification.Stats.Spam != 1 || out.Classification.Stats.MediumRisk != 1 {
		t.Errorf("AnalyzePlatform() = %+v", out)
	}

	if _, err := uc.AnalyzePlatform(context.Background(), model.Scope{UserID: owner}, message.AnalyzePlatformInput{}); !errors.Is(err, message.ErrInvalidPlatform) {
		t.Errorf("AnalyzePlatform() error = %v, want ErrInvalidPlatform", err)
	}
}

func TestOverview(t *testing.T) {
	sc := model.Scope{UserID: owner}

	t.Run("one card per platform", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{messages: seedMessages()}, newFakeCache())
		out, err := uc.Overview(context.Background(), sc)
		if err != nil {
			t.Fatalf("Overview() error = %v", err)
		}
		if len(out.Platforms) != len(model.Platforms) {
			t.Fatalf("len(Platforms) = %d, want %d", len(out.Platforms), len(model.Platforms))
		}
		for i, p := range model.Platforms {
			if out.Platforms[i].Platform != p {
				t.Errorf("Platforms[%d] = %s, want %s", i, out.Platforms[i].Platform, p)
			}
		}
		if out.Totals.Total != 3 {
			t.Errorf("Totals.Total = %d, want 3", out.Totals.Total)
		}
		empty := out.Platforms[2].Analysis
		if empty.TotalMessages != 0 || empty.Summary != sentiment.NoDataSummary {
			t.Errorf("empty platform analysis = %+v", empty)
		}
	})

	t.Run("cached until a flag changes", func(t *testing.T) {
		repo := &fakeRepo{messages: seedMessages()}
		uc := newTestUseCase(repo, newFakeCache())
		first, err := uc.Overview(context.Background(), sc)
		if err != nil {
			t.Fatalf("Overview() error = %v", err)
		}
		second, err := uc.Overview(context.Background(), sc)
		if err != nil {
			t.Fatalf("second Overview() error = %v", err)
		}
		if repo.findCalls != len(model.Platforms) {
			t.Fatalf("findCalls = %d, want %d", repo.findCalls, len(model.Platforms))
		}
		if second.Totals != first.Totals {
			t.Errorf("cached Totals = %+v, want %+v", second.Totals, first.Totals)
		}

		if _, err := uc.SetFlag(context.Background(), sc, message.SetFlagInput{MessageID: "m1", Flagged: true}); err != nil {
			t.Fatalf("SetFlag() error = %v", err)
		}
		if _, err := uc.Overview(context.Background(), sc); err != nil {
			t.Fatalf("Overview() after SetFlag error = %v", err)
		}
		if repo.findCalls != 2*len(model.Platforms) {
			t.Errorf("findCalls after SetFlag = %d, want %d", repo.findCalls, 2*len(model.Platforms))
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{findErr: errors.New("db down")}, newFakeCache())
		if _, err := uc.Overview(context.Background(), sc); err == nil {
			t.Error("Overview() error = nil, want error")
		}
	})
}
