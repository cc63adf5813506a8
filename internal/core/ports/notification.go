package ports

import (
	"context"
	"time"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// NotificationEventInput is the DTO carried through the notification
// dispatcher from producers (approval decisions, messages) to the worker
// that persists inbox entries.
type NotificationEventInput struct {
	RecipientID string
	Kind        domain.NotificationKind
	Title       string
	Body        string
	OccurredAt  time.Time
}

// NotificationService processes notification events off the dispatcher.
type NotificationService interface {
	Process(ctx context.Context, event NotificationEventInput) error
}

// NotificationPublisher is the producer-side interface for enqueueing
// notification events without blocking the request path.
type NotificationPublisher interface {
	Enqueue(event NotificationEventInput)
	EnqueueBatch(events []NotificationEventInput)
}
