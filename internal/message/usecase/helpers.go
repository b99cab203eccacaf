package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"insight-srv/internal/classification"
	"insight-srv/internal/message"
	"insight-srv/internal/message/repository"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
)

const (
	cacheOverview      = "overview"
	cacheAccountPrefix = "account:"
)

// parsePlatform accepts an empty value as "all platforms".
func parsePlatform(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	p, ok := model.ParsePlatform(raw)
	if !ok {
		return "", message.ErrInvalidPlatform
	}
	return p.String(), nil
}

func toSentimentMessages(msgs []model.Message) []sentiment.Message {
	out := make([]sentiment.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, sentiment.Message{
			Text:      m.Text,
			Timestamp: m.Timestamp,
			ChatName:  m.ChatName,
		})
	}
	return out
}

// loadCached fills dst from the cache. Any cache failure is a miss.
func (uc *implUseCase) loadCached(ctx context.Context, ownerID, name string, dst any) bool {
	data, err := uc.cache.GetAnalysis(ctx, ownerID, name)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "message.usecase.loadCached: Failed to read %s: %v", name, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		uc.l.Warnf(ctx, "message.usecase.loadCached: Failed to unmarshal %s: %v", name, err)
		return false
	}
	return true
}

func (uc *implUseCase) storeCached(ctx context.Context, ownerID, name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		uc.l.Warnf(ctx, "message.usecase.storeCached: Failed to marshal %s: %v", name, err)
		return
	}
	if err := uc.cache.SaveAnalysis(ctx, ownerID, name, data); err != nil {
		uc.l.Warnf(ctx, "message.usecase.storeCached: Failed to save %s: %v", name, err)
	}
}

func (uc *implUseCase) invalidate(ctx context.Context, ownerID string) {
	if err := uc.cache.InvalidateOwner(ctx, ownerID); err != nil {
		uc.l.Warnf(ctx, "message.usecase.invalidate: Failed to invalidate cache of %s: %v", ownerID, err)
	}
}

func sumStats(a, b classification.Stats) classification.Stats {
	a.Total += b.Total
	a.Safe += b.Safe
	a.Fraud += b.Fraud
	a.Sensitive += b.Sensitive
	a.Spam += b.Spam
	a.Other += b.Other
	a.Flagged += b.Flagged
	a.HighRisk += b.HighRisk
	a.MediumRisk += b.MediumRisk
	a.LowRisk += b.LowRisk
	return a
}
