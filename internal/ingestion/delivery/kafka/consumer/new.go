package consumer

import (
	"fmt"

	"insight-srv/config"
	"insight-srv/internal/ingestion"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Config holds the configuration for the ingestion consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     ingestion.UseCase
}

// Consumer manages the Kafka consumer group of the ingestion domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          ingestion.UseCase

	batchIngestedGroup pkgKafka.IConsumer
}

// New creates a new ingestion consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.batchIngestedGroup != nil {
		if err := c.batchIngestedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close batch ingested group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
