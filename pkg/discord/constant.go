package discord

import (
	"errors"
	"time"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	// Discord embed limits
	maxDescriptionLen = 4096
	maxContentLen     = 2000

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      time.Second,
		DefaultUsername: "insight-srv",
	}
}
