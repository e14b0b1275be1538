package discord

import "context"

// IDiscord sends operator-facing alert messages to a Discord channel.
type IDiscord interface {
	// Alert sends an embed with the given title and description.
	Alert(ctx context.Context, title, description string, color int) error
	// Send sends a plain content message.
	Send(ctx context.Context, content string) error
}
