package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"insight-srv/internal/ingestion"
	kafkaDelivery "insight-srv/internal/ingestion/delivery/kafka"
	"insight-srv/internal/model"
	"insight-srv/pkg/scope"
)

// handleBatchIngestedMessage decodes one event and hands it to the usecase.
// Malformed events and batches that can never succeed return nil so they are
// committed instead of redelivered forever.
func (c *Consumer) handleBatchIngestedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Infof(ctx, "ingestion.delivery.kafka.consumer.handleBatchIngestedMessage: Processing partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.BatchIngestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "ingestion.delivery.kafka.consumer.handleBatchIngestedMessage: Invalid message format (skipping): %v", err)
		return nil
	}
	if message.BatchID == "" || message.FileURL == "" || message.OwnerID == "" {
		c.l.Warnf(ctx, "ingestion.delivery.kafka.consumer.handleBatchIngestedMessage: Missing required fields (skipping)")
		return nil
	}

	ctx = scope.SetScopeToContext(ctx, model.SystemScope(message.OwnerID))

	output, err := c.uc.Ingest(ctx, toIngestInput(message))
	if err != nil {
		if errors.Is(err, ingestion.ErrInvalidBatch) || errors.Is(err, ingestion.ErrFileNotFound) || errors.Is(err, ingestion.ErrFileParseFailed) {
			c.l.Warnf(ctx, "ingestion.delivery.kafka.consumer.handleBatchIngestedMessage: Dropping batch %s: %v", message.BatchID, err)
			return nil
		}
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "ingestion.delivery.kafka.consumer.handleBatchIngestedMessage: Batch %s done: stored=%d, skipped=%d, invalid=%d, risk=%s",
		message.BatchID, output.Stored, output.Skipped, output.InvalidLines, output.Analysis.ScamRisk)
	return nil
}
