package httpserver

import (
	"database/sql"
	"errors"

	"insight-srv/config"
	"insight-srv/internal/message"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	pkgJWT "insight-srv/pkg/jwt"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	pkgRedis "insight-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Infrastructure clients
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbit.IRabbitMQ

	// Pipeline Configuration
	kafkaConfig     config.KafkaConfig
	rabbitConfig    config.RabbitMQConfig
	ingestionConfig config.IngestionConfig
	cacheConfig     config.CacheConfig
	reportBucket    string

	// Authentication & Security Configuration
	jwtManager   pkgJWT.IManager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter
	internalKey  string

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared usecases, built once in mapHandlers
	sentimentUC sentiment.UseCase
	messageUC   message.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Infrastructure clients. KafkaProducer and RabbitMQ are optional.
	RedisClient   pkgRedis.IRedis
	MinIO         minio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitMQ      pkgRabbit.IRabbitMQ

	// Pipeline Configuration
	KafkaConfig     config.KafkaConfig
	RabbitMQConfig  config.RabbitMQConfig
	IngestionConfig config.IngestionConfig
	CacheConfig     config.CacheConfig
	ReportBucket    string

	// Authentication & Security Configuration
	JWTManager   pkgJWT.IManager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter
	InternalKey  string

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           cfg.Logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Infrastructure clients
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIO,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitMQ,

		// Pipeline Configuration
		kafkaConfig:     cfg.KafkaConfig,
		rabbitConfig:    cfg.RabbitMQConfig,
		ingestionConfig: cfg.IngestionConfig,
		cacheConfig:     cfg.CacheConfig,
		reportBucket:    cfg.ReportBucket,

		// Authentication & Security Configuration
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,
		internalKey:  cfg.InternalKey,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Monitoring & Notification Configuration (optional)
	// if srv.discord == nil {
	// 	return errors.New("discord is required")
	// }

	return nil
}
