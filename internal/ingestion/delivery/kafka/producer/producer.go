package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/ingestion"
	kafkaDelivery "insight-srv/internal/ingestion/delivery/kafka"
)

// PublishAnalysisCompleted publishes the batch summary keyed by owner, so one
// tenant's events stay ordered on a partition.
func (p *implProducer) PublishAnalysisCompleted(ctx context.Context, event ingestion.AnalysisCompleted) error {
	keywords := event.ScamKeywords
	if keywords == nil {
		keywords = []string{}
	}

	msg := kafkaDelivery.AnalysisCompletedMessage{
		BatchID:          event.BatchID,
		OwnerID:          event.OwnerID,
		Platform:         event.Platform,
		AccountID:        event.AccountID,
		Stored:           event.Stored,
		Skipped:          event.Skipped,
		OverallSentiment: event.OverallSentiment,
		ScamRisk:         event.ScamRisk,
		ScamKeywords:     keywords,
		AvgCompound:      event.AvgCompound,
		ScamMessageCount: event.ScamMessageCount,
		CompletedAt:      event.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis completed: %w", err)
	}

	topic := p.topic
	if topic == "" {
		topic = kafkaDelivery.TopicAnalysisCompleted
	}

	if err := p.producer.PublishTo(topic, []byte(event.OwnerID), body); err != nil {
		return fmt.Errorf("failed to publish analysis completed: %w", err)
	}

	p.l.Infof(ctx, "ingestion.delivery.kafka.producer.PublishAnalysisCompleted: Published batch %s: %s", event.BatchID, event.ScamRisk)
	return nil
}
