package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

const (
	notificationKeyPrefix = "notifications:"
	// inboxCap bounds each inbox; oldest entries are dropped first.
	inboxCap = 100
)

// NotificationService persists notification events into per-recipient
// inboxes in the key-value store. It runs on the dispatcher's workers, which
// shard by recipient, so read-modify-write on a single inbox is never
// concurrent.
type NotificationService struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

func NewNotificationService(kv ports.KeyValueStore, log zerolog.Logger) *NotificationService {
	return &NotificationService{kv: kv, log: log}
}

// Process appends one notification to the recipient's inbox.
func (s *NotificationService) Process(ctx context.Context, event ports.NotificationEventInput) error {
	inbox, err := s.load(ctx, event.RecipientID)
	if err != nil {
		return fmt.Errorf("process notification: %w", err)
	}

	inbox = append(inbox, domain.Notification{
		ID:          newID("ntf"),
		RecipientID: event.RecipientID,
		Kind:        event.Kind,
		Title:       event.Title,
		Body:        event.Body,
		CreatedAt:   event.OccurredAt,
	})
	if len(inbox) > inboxCap {
		inbox = inbox[len(inbox)-inboxCap:]
	}

	raw, err := json.Marshal(inbox)
	if err != nil {
		return fmt.Errorf("process notification: %w", err)
	}
	if err := s.kv.Set(ctx, notificationKeyPrefix+event.RecipientID, raw); err != nil {
		return fmt.Errorf("process notification: %w", err)
	}

	s.log.Debug().
		Str("recipient_id", event.RecipientID).
		Str("kind", string(event.Kind)).
		Msg("notification stored")
	return nil
}

// ListForRecipient returns the recipient's inbox, newest first.
func (s *NotificationService) ListForRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	inbox, err := s.load(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	// Stored oldest-first; reverse for display.
	out := make([]domain.Notification, 0, len(inbox))
	for i := len(inbox) - 1; i >= 0; i-- {
		out = append(out, inbox[i])
	}
	return out, nil
}

func (s *NotificationService) load(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	raw, err := s.kv.Get(ctx, notificationKeyPrefix+recipientID)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var inbox []domain.Notification
	if err := json.Unmarshal(raw, &inbox); err != nil {
		return nil, err
	}
	return inbox, nil
}
