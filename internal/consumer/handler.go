package consumer

import (
	"context"
	"fmt"

	classificationUsecase "insight-srv/internal/classification/usecase"
	"insight-srv/internal/ingestion"
	ingestionConsumer "insight-srv/internal/ingestion/delivery/kafka/consumer"
	ingestionKafka "insight-srv/internal/ingestion/delivery/kafka/producer"
	ingestionRabbit "insight-srv/internal/ingestion/delivery/rabbitmq/producer"
	ingestionUsecase "insight-srv/internal/ingestion/usecase"
	messagePostgre "insight-srv/internal/message/repository/postgre"
	messageRedis "insight-srv/internal/message/repository/redis"
	messageUsecase "insight-srv/internal/message/usecase"
	sentimentUsecase "insight-srv/internal/sentiment/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	ingestionConsumer *ingestionConsumer.Consumer
	alertProducer     ingestionRabbit.Producer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	sentimentUC := sentimentUsecase.New(srv.l)
	classifierUC := classificationUsecase.New()

	messageRepo := messagePostgre.New(srv.postgresDB, srv.encrypter, srv.l)
	messageCache := messageRedis.New(srv.redisClient, srv.cacheConfig.AnalysisTTL, srv.l)
	messageUC := messageUsecase.New(srv.l, messageRepo, messageCache, sentimentUC, classifierUC)

	publisher := ingestionKafka.New(srv.l, srv.kafkaProducer, srv.kafkaConfig.Topic)

	consumers := &domainConsumers{}
	var alerter ingestion.Alerter
	if srv.rabbitConn != nil {
		p, err := ingestionRabbit.New(srv.l, srv.rabbitConn, srv.rabbitConfig.AlertExchange)
		if err != nil {
			return nil, fmt.Errorf("failed to create alert producer: %w", err)
		}
		consumers.alertProducer = p
		alerter = p
	} else {
		srv.l.Warnf(ctx, "RabbitMQ not configured, risk alerts disabled")
	}

	ingestionUC := ingestionUsecase.New(
		srv.l,
		srv.ingestionConfig,
		srv.minioClient,
		messageUC,
		sentimentUC,
		publisher,
		alerter,
	)

	cons, err := ingestionConsumer.New(ingestionConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     ingestionUC,
	})
	if err != nil {
		srv.closeAlertProducer(ctx, consumers)
		return nil, fmt.Errorf("failed to create ingestion consumer: %w", err)
	}
	consumers.ingestionConsumer = cons

	srv.l.Infof(ctx, "Ingestion domain initialized")
	return consumers, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.ingestionConsumer.ConsumeBatchIngested(ctx); err != nil {
		return fmt.Errorf("failed to start ingestion consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.ingestionConsumer != nil {
		if err := consumers.ingestionConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing ingestion consumer: %v", err)
		}
	}
	srv.closeAlertProducer(ctx, consumers)

	srv.l.Infof(ctx, "All consumers stopped")
}

func (srv *ConsumerServer) closeAlertProducer(ctx context.Context, consumers *domainConsumers) {
	if consumers.alertProducer == nil {
		return
	}
	if err := consumers.alertProducer.Close(); err != nil {
		srv.l.Errorf(ctx, "Error closing alert producer: %v", err)
	}
}
