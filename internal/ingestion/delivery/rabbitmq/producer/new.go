package producer

import (
	"fmt"

	"insight-srv/internal/ingestion"
	rmqDelivery "insight-srv/internal/ingestion/delivery/rabbitmq"
	"insight-srv/pkg/log"
	pkgRabbit "insight-srv/pkg/rabbitmq"
)

// Producer publishes risk alerts to RabbitMQ
type Producer interface {
	ingestion.Alerter
	Close() error
}

type implProducer struct {
	l        log.Logger
	ch       pkgRabbit.IChannel
	exchange string
}

// New opens a channel on conn and declares the alerts exchange.
func New(l log.Logger, conn pkgRabbit.IRabbitMQ, exchange string) (Producer, error) {
	if exchange == "" {
		exchange = rmqDelivery.ExchangeAlerts
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    exchange,
		Type:    pkgRabbit.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &implProducer{
		l:        l,
		ch:       ch,
		exchange: exchange,
	}, nil
}

func (p *implProducer) Close() error {
	return p.ch.Close()
}
