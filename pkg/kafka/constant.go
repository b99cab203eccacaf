package kafka

import (
	"errors"
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout is the Kafka producer request timeout.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
)

var (
	// KafkaVersion is the sarama version used.
	KafkaVersion = sarama.V2_6_0_0
)

var (
	ErrBrokersRequired = errors.New("kafka: at least one broker is required")
	ErrTopicRequired   = errors.New("kafka: topic is required")
	ErrGroupIDRequired = errors.New("kafka: group ID is required")
)
