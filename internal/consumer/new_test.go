package consumer

import (
	"database/sql"
	"testing"

	"insight-srv/config"
	"insight-srv/pkg/encrypter"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
	"insight-srv/pkg/redis"
)

type fakeRedis struct{ redis.IRedis }

type fakeMinIO struct{ minio.MinIO }

type fakeProducer struct{ pkgKafka.IProducer }

type fakeEncrypter struct{ encrypter.Encrypter }

func validConfig() Config {
	return Config{
		Logger:        log.NewNop(),
		KafkaConfig:   config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		RedisClient:   fakeRedis{},
		PostgresDB:    &sql.DB{},
		MinIOClient:   fakeMinIO{},
		KafkaProducer: fakeProducer{},
		Encrypter:     fakeEncrypter{},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid without rabbitmq", mutate: func(c *Config) {}},
		{name: "missing logger", mutate: func(c *Config) { c.Logger = nil }, wantErr: true},
		{name: "missing brokers", mutate: func(c *Config) { c.KafkaConfig.Brokers = nil }, wantErr: true},
		{name: "missing redis", mutate: func(c *Config) { c.RedisClient = nil }, wantErr: true},
		{name: "missing postgres", mutate: func(c *Config) { c.PostgresDB = nil }, wantErr: true},
		{name: "missing minio", mutate: func(c *Config) { c.MinIOClient = nil }, wantErr: true},
		{name: "missing producer", mutate: func(c *Config) { c.KafkaProducer = nil }, wantErr: true},
		{name: "missing encrypter", mutate: func(c *Config) { c.Encrypter = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			_, err := New(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetupDomainsWithoutRabbitMQ(t *testing.T) {
	srv, err := New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	consumers, err := srv.setupDomains(t.Context())
	if err != nil {
		t.Fatalf("setupDomains() error = %v", err)
	}
	if consumers.ingestionConsumer == nil {
		t.Fatal("ingestion consumer not created")
	}
	if consumers.alertProducer != nil {
		t.Fatal("alert producer created without a connection")
	}
}
