package input

import (
	"context"

	"gamelink-finder/internal/domain"
)

// LineWebhookService interface - Input port (use case)
// Defines what the application can do with LINE webhook events
type LineWebhookService interface {
	// HandleWebhook accepts incoming webhook events from LINE. Events are handed to
	// per-conversation queues, so this returns before long searches finish.
	HandleWebhook(ctx context.Context, request domain.LineWebhookRequest) error
}
