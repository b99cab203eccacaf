package redis

import (
	"errors"
	"time"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	scanBatchSize         = 100
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
)

// Nil is returned by Get when the key does not exist.
var Nil = errNil

func (cfg RedisConfig) validate() error {
	if cfg.Host == "" {
		return ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}
