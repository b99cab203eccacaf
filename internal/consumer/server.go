package consumer

import (
	"context"
	"database/sql"

	"insight-srv/config"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	"insight-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l               log.Logger
	kafkaConfig     config.KafkaConfig
	rabbitConfig    config.RabbitMQConfig
	ingestionConfig config.IngestionConfig
	cacheConfig     config.CacheConfig

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbit.IRabbitMQ
	encrypter     encrypter.Encrypter

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger          log.Logger
	KafkaConfig     config.KafkaConfig
	RabbitMQConfig  config.RabbitMQConfig
	IngestionConfig config.IngestionConfig
	CacheConfig     config.CacheConfig

	// Infrastructure clients. RabbitMQ is optional; without it no risk alerts are sent.
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitMQ      pkgRabbit.IRabbitMQ
	Encrypter     encrypter.Encrypter

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	// ctx is already cancelled; keep its values for the shutdown logs.
	srv.stopConsumers(context.WithoutCancel(ctx), consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
