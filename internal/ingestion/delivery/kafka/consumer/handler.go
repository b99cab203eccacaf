package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type batchIngestedHandler struct {
	consumer *Consumer
}

func (h *batchIngestedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *batchIngestedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only after it was handled. A retryable failure
// ends the claim, which closes the session, so the group re-joins and reads the
// unmarked message again from the committed offset.
func (h *batchIngestedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleBatchIngestedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "ingestion.delivery.kafka.consumer.ConsumeClaim: Failed to process batch message: %v", err)
			return err
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
