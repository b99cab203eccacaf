package producer

import (
	"insight-srv/internal/ingestion"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Producer interface for ingestion domain
type Producer interface {
	ingestion.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	topic    string
}

// New creates a new ingestion producer. An empty topic falls back to insight.analysis.completed.
func New(l log.Logger, producer pkgKafka.IProducer, topic string) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
		topic:    topic,
	}
}
