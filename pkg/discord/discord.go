package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

// SendMessage sends a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxContentLen),
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	embed := Embed{
		Title:       options.Title,
		Description: truncate(options.Description, maxDescriptionLen),
		Color:       colorFor(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Footer:      options.Footer,
		Fields:      options.Fields,
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

// SendError sends an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), 1024)})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

// ReportBug sends an unexpected failure report.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: message,
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("discord: failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < 300 {
				return nil
			}
			lastErr = fmt.Errorf("discord: unexpected status %d", resp.StatusCode)
		} else {
			lastErr = err
		}

		if attempt < d.config.RetryCount {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
	}

	d.l.Warnf(ctx, "pkg.discord.send: Failed to deliver webhook: %v", lastErr)
	return lastErr
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
