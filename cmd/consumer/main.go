package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"insight-srv/config"
	"insight-srv/config/kafka"
	"insight-srv/config/minio"
	"insight-srv/config/postgre"
	"insight-srv/config/rabbitmq"
	"insight-srv/config/redis"
	"insight-srv/internal/consumer"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/log"
	pkgRabbit "insight-srv/pkg/rabbitmq"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Insight Consumer Service...")

	// Encrypter
	encrypterInstance, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize encrypter: %v", err)
		return
	}

	// Kafka Producer (for publishing analysis events)
	kafkaProducer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer kafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := minio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer minio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// RabbitMQ (optional, risk alerts)
	var rabbitConn pkgRabbit.IRabbitMQ
	if cfg.RabbitMQ.URL != "" {
		rabbitConn, err = rabbitmq.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ not available, risk alerts disabled: %v", err)
			rabbitConn = nil
		} else {
			defer rabbitmq.Disconnect()
			logger.Info(ctx, "RabbitMQ client initialized")
		}
	}

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:          logger,
		KafkaConfig:     cfg.Kafka,
		RabbitMQConfig:  cfg.RabbitMQ,
		IngestionConfig: cfg.Ingestion,
		CacheConfig:     cfg.Cache,
		RedisClient:     redisClient,
		PostgresDB:      postgresDB,
		MinIOClient:     minioClient,
		KafkaProducer:   kafkaProducer,
		RabbitMQ:        rabbitConn,
		Encrypter:       encrypterInstance,
		Discord:         discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
