package consumer

import (
	"context"

	kafkaDelivery "insight-srv/internal/ingestion/delivery/kafka"
)

// ConsumeBatchIngested starts consuming collected batches in the background.
// The group stops when ctx is cancelled.
func (c *Consumer) ConsumeBatchIngested(ctx context.Context) error {
	groupID := c.kafkaConfig.GroupID
	if groupID == "" {
		groupID = kafkaDelivery.GroupIDIngestion
	}

	group, err := c.createConsumerGroup(groupID)
	if err != nil {
		return err
	}
	c.batchIngestedGroup = group

	handler := &batchIngestedHandler{consumer: c}

	go func() {
		if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicMessagesIngested}, handler); err != nil {
			c.l.Errorf(ctx, "ingestion.delivery.kafka.consumer.ConsumeBatchIngested: Consumer stopped: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "ingestion.delivery.kafka.consumer.ConsumeBatchIngested: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "ingestion.delivery.kafka.consumer.ConsumeBatchIngested: Consuming %s as %s", kafkaDelivery.TopicMessagesIngested, groupID)
	return nil
}
