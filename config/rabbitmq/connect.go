package rabbitmq

import (
	"fmt"
	"sync"

	"insight-srv/config"
	"insight-srv/pkg/log"
	"insight-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IRabbitMQ
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect dials RabbitMQ once and returns the shared connection.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		if cfg.URL == "" {
			err = fmt.Errorf("rabbitmq.url is required")
			initErr = err
			return
		}
		conn, e := rabbitmq.NewRabbitMQ(l, cfg.URL, cfg.RetryWithoutTimeout)
		if e != nil {
			err = fmt.Errorf("failed to connect to RabbitMQ: %w", e)
			initErr = err
			return
		}
		instance = conn
	})

	return instance, err
}

func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("RabbitMQ connection not initialized")
	}
	if !instance.IsReady() {
		return fmt.Errorf("RabbitMQ connection is not ready")
	}
	return nil
}

func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
}
