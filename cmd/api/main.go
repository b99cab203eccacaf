package main

import (
	"context"
	"fmt"
	"time"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configMinio "insight-srv/config/minio"
	configPostgre "insight-srv/config/postgre"
	configRabbit "insight-srv/config/rabbitmq"
	configRedis "insight-srv/config/redis"
	"insight-srv/internal/httpserver"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	pkgJWT "insight-srv/pkg/jwt"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	pkgRabbit "insight-srv/pkg/rabbitmq"
)

// @title       Insight Service API
// @description Risk and sentiment analytics over collected platform messages.
// @version     1
// @BasePath    /api/v1
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name insight_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize encrypter
	encrypterInstance, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Error(ctx, "Failed to initialize encrypter: ", err)
		return
	}

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 7. Initialize Kafka producer (optional, analysis events from replayed batches)
	var kafkaProducer pkgKafka.IProducer
	if p, err := configKafka.ConnectProducer(cfg.Kafka); err != nil {
		logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
	} else {
		kafkaProducer = p
		defer configKafka.DisconnectProducer()
		logger.Info(ctx, "Kafka producer initialized")
	}

	// 8. Initialize RabbitMQ (optional, risk alerts from replayed batches)
	var rabbitConn pkgRabbit.IRabbitMQ
	if cfg.RabbitMQ.URL != "" {
		if conn, err := configRabbit.Connect(logger, cfg.RabbitMQ); err != nil {
			logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
		} else {
			rabbitConn = conn
			defer configRabbit.Disconnect()
			logger.Info(ctx, "RabbitMQ initialized")
		}
	}

	// 9. Initialize Discord (optional)
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
			logger.Infof(ctx, "Discord webhook initialized successfully")
		}
	}

	// 10. Initialize JWT Manager
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Infrastructure clients
		RedisClient:   redisClient,
		MinIO:         minioClient,
		KafkaProducer: kafkaProducer,
		RabbitMQ:      rabbitConn,

		// Pipeline Configuration
		KafkaConfig:     cfg.Kafka,
		RabbitMQConfig:  cfg.RabbitMQ,
		IngestionConfig: cfg.Ingestion,
		CacheConfig:     cfg.Cache,
		ReportBucket:    cfg.MinIO.ReportBucket,

		// Authentication & Security Configuration
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,
		InternalKey:  cfg.InternalConfig.InternalKey,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeJWTManager initializes JWT manager with HS256 symmetric key
func initializeJWTManager(cfg *config.Config) (pkgJWT.IManager, error) {
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}
