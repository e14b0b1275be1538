package discord

import "time"

const (
	// webhookURL is the Discord webhook URL template (id, token).
	webhookURL = "https://discord.com/api/webhooks/%s/%s"

	// MaxMessageLength is the Discord hard limit for message content.
	MaxMessageLength = 2000
)

// Embed colors for alert severities.
const (
	ColorRed    = 15158332
	ColorOrange = 15105570
	ColorGreen  = 3066993
)

// Config holds HTTP client and retry settings for the webhook sender.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// DefaultConfig returns sane defaults for webhook delivery.
func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		RetryCount: 2,
		RetryDelay: 2 * time.Second,
	}
}
