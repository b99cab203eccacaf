package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"insight-srv/internal/message"
	"insight-srv/internal/message/repository"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
)

func (uc *implUseCase) AnalyzeAccount(ctx context.Context, sc model.Scope, input message.AnalyzeAccountInput) (message.AccountAnalysisOutput, error) {
	cacheName := cacheAccountPrefix + input.AccountID

	var cached message.AccountAnalysisOutput
	if uc.loadCached(ctx, sc.UserID, cacheName, &cached) {
		cached.CacheHit = true
		return cached, nil
	}

	acc, err := uc.repo.GetAccountByID(ctx, repository.GetAccountOptions{OwnerID: sc.UserID, ID: input.AccountID})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return message.AccountAnalysisOutput{}, message.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "message.usecase.AnalyzeAccount: Failed to get account %s: %v", input.AccountID, err)
		return message.AccountAnalysisOutput{}, err
	}

	msgs, err := uc.repo.FindMessages(ctx, repository.FindMessagesOptions{OwnerID: sc.UserID, AccountID: acc.ID})
	if err != nil {
		uc.l.Errorf(ctx, "message.usecase.AnalyzeAccount: Failed to load messages of %s: %v", acc.ID, err)
		return message.AccountAnalysisOutput{}, err
	}

	groups := acc.JoinedGroups
	if groups <= 0 {
		groups, err = uc.repo.CountChats(ctx, repository.GetAccountOptions{OwnerID: sc.UserID, ID: acc.ID})
		if err != nil {
			uc.l.Errorf(ctx, "message.usecase.AnalyzeAccount: Failed to count chats of %s: %v", acc.ID, err)
			return message.AccountAnalysisOutput{}, err
		}
	}

	analysis := uc.sentimentUC.AnalyzeMessages(toSentimentMessages(msgs))
	summary := uc.sentimentUC.GenerateSummary(sentiment.UserData{
		FirstName:    acc.FirstName,
		LastName:     acc.LastName,
		MessageCount: len(msgs),
		JoinedGroups: groups,
	}, analysis)
	analysis.Summary = summary

	out := message.AccountAnalysisOutput{
		Account:  acc,
		Analysis: analysis,
		Summary:  summary,
	}
	uc.storeCached(ctx, sc.UserID, cacheName, out)

	return out, nil
}

func (uc *implUseCase) AnalyzePlatform(ctx context.Context, sc model.Scope, input message.AnalyzePlatformInput) (message.PlatformAnalysisOutput, error) {
	p, ok := model.ParsePlatform(input.Platform)
	if !ok {
		return message.PlatformAnalysisOutput{}, message.ErrInvalidPlatform
	}

	msgs, err := uc.repo.FindMessages(ctx, repository.FindMessagesOptions{OwnerID: sc.UserID, Platform: p.String()})
	if err != nil {
		uc.l.Errorf(ctx, "message.usecase.AnalyzePlatform: Failed to load %s messages: %v", p, err)
		return message.PlatformAnalysisOutput{}, err
	}

	// Not cached: the classification buckets carry decrypted message text.
	return message.PlatformAnalysisOutput{
		Platform:       p,
		Analysis:       uc.sentimentUC.AnalyzeMessages(toSentimentMessages(msgs)),
		Classification: uc.classifierUC.ClassifyMessagesByType(msgs),
	}, nil
}

// Overview loads every platform concurrently. Cards keep model.Platforms order.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope) (message.OverviewOutput, error) {
	var cached message.OverviewOutput
	if uc.loadCached(ctx, sc.UserID, cacheOverview, &cached) {
		return cached, nil
	}

	cards := make([]message.PlatformOverview, len(model.Platforms))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range model.Platforms {
		g.Go(func() error {
			msgs, err := uc.repo.FindMessages(gctx, repository.FindMessagesOptions{OwnerID: sc.UserID, Platform: p.String()})
			if err != nil {
				return err
			}
			cards[i] = message.PlatformOverview{
				Platform: p,
				Stats:    uc.classifierUC.ClassifyMessagesByType(msgs).Stats,
				Analysis: uc.sentimentUC.AnalyzeMessages(toSentimentMessages(msgs)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "message.usecase.Overview: Failed to load platforms: %v", err)
		return message.OverviewOutput{}, err
	}

	out := message.OverviewOutput{Platforms: cards}
	for _, c := range cards {
		out.Totals = sumStats(out.Totals, c.Stats)
	}
	uc.storeCached(ctx, sc.UserID, cacheOverview, out)

	return out, nil
}
