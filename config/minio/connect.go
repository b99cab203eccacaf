package minio

import (
	"context"
	"fmt"
	"sync"

	"insight-srv/config"
	"insight-srv/pkg/minio"
)

var (
	instance minio.MinIO
	mu       sync.Mutex
)

// Connect returns the shared MinIO client, creating it on first use. The
// report bucket is created when missing so report uploads never race on it.
// A failed attempt leaves no instance behind and can be retried.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if cfg.ReportBucket != "" {
		if err := client.EnsureBucket(ctx, cfg.ReportBucket); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to ensure bucket %s: %w", cfg.ReportBucket, err)
		}
	}

	instance = client
	return instance, nil
}

// Disconnect closes the MinIO client and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
