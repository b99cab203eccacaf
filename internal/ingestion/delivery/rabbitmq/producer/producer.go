package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"insight-srv/internal/ingestion"
	rmqDelivery "insight-srv/internal/ingestion/delivery/rabbitmq"
	pkgRabbit "insight-srv/pkg/rabbitmq"
)

// PublishRiskAlert publishes a persistent alert routed by platform.
func (p *implProducer) PublishRiskAlert(ctx context.Context, alert ingestion.RiskAlert) error {
	keywords := alert.ScamKeywords
	if keywords == nil {
		keywords = []string{}
	}

	body, err := json.Marshal(rmqDelivery.RiskAlertMessage{
		BatchID:          alert.BatchID,
		OwnerID:          alert.OwnerID,
		Platform:         alert.Platform,
		AccountID:        alert.AccountID,
		ScamRisk:         alert.ScamRisk,
		ScamKeywords:     keywords,
		ScamMessageCount: alert.ScamMessageCount,
		TotalMessages:    alert.TotalMessages,
		RaisedAt:         alert.RaisedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal risk alert: %w", err)
	}

	routingKey := rmqDelivery.RoutingKeyRiskHighPrefix + strings.ToLower(alert.Platform)
	if err := p.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   p.exchange,
		RoutingKey: routingKey,
		Msg: pkgRabbit.Publishing{
			ContentType:  pkgRabbit.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    alert.BatchID,
			Timestamp:    alert.RaisedAt,
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish risk alert: %w", err)
	}

	p.l.Infof(ctx, "ingestion.delivery.rabbitmq.producer.PublishRiskAlert: Sent %s for batch %s", routingKey, alert.BatchID)
	return nil
}
