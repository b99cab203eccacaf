package kafka

import (
	"errors"
	"fmt"
	"sync"

	"insight-srv/config"
	"insight-srv/pkg/kafka"
)

// DefaultTopic receives analysis completed events when kafka.topic is unset.
const DefaultTopic = "insight.analysis.completed"

var errNoBrokers = errors.New("kafka: at least one broker is required")

var (
	producerInstance kafka.IProducer
	producerMu       sync.Mutex
)

// ConnectProducer returns the shared Kafka producer, creating it on first use.
// A failed attempt leaves no instance behind and can be retried.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}
	if len(cfg.Brokers) == 0 {
		return nil, errNoBrokers
	}

	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstance = client
	return producerInstance, nil
}

// DisconnectProducer closes the Kafka producer and resets the singleton.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	err := producerInstance.Close()
	producerInstance = nil
	return err
}
