package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/mockdata"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// ContentService serves campaigns, posts, invoices, and messages from the
// generated dataset, scoped per role, behind the simulated transport.
type ContentService struct {
	gen      *mockdata.Generator
	sim      *mockdata.Simulator
	notifier ports.NotificationPublisher
	log      zerolog.Logger
}

func NewContentService(gen *mockdata.Generator, sim *mockdata.Simulator, notifier ports.NotificationPublisher, log zerolog.Logger) *ContentService {
	return &ContentService{gen: gen, sim: sim, notifier: notifier, log: log}
}

func (s *ContentService) ListClients(ctx context.Context) ([]domain.Client, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	return s.gen.Clients(), nil
}

func (s *ContentService) ListCampaigns(ctx context.Context, role domain.Role, clientID string) ([]domain.Campaign, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	return s.gen.Campaigns(scope(role, clientID, "")), nil
}

func (s *ContentService) ListSocialPosts(ctx context.Context, role domain.Role, clientID string) ([]domain.SocialPost, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	return s.gen.SocialPosts(scope(role, clientID, "")), nil
}

func (s *ContentService) ListBlogPosts(ctx context.Context, role domain.Role, clientID string) ([]domain.BlogPost, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	return s.gen.BlogPosts(scope(role, clientID, "")), nil
}

func (s *ContentService) ListInvoices(ctx context.Context, role domain.Role, clientID string) ([]domain.Invoice, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	return s.gen.Invoices(scope(role, clientID, "")), nil
}

func (s *ContentService) ListMessages(ctx context.Context, role domain.Role, clientID string) ([]domain.Message, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	return s.gen.Messages(scope(role, clientID, "")), nil
}

// SendMessage delivers a message by notifying the recipient. The thread
// itself is part of the generated dataset; sends only fan out through the
// notification pipeline.
func (s *ContentService) SendMessage(ctx context.Context, sender *domain.User, recipientID, body string) (*domain.Message, error) {
	if !domain.HasPermission(sender.Role, domain.PermSendMessages) {
		return nil, domain.ErrForbidden
	}
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	msg := &domain.Message{
		ID:          newID("msg"),
		ClientID:    sender.ClientID,
		SenderID:    sender.ID,
		SenderName:  sender.Name,
		RecipientID: recipientID,
		Body:        body,
		SentAt:      now,
	}

	s.notifier.Enqueue(ports.NotificationEventInput{
		RecipientID: recipientID,
		Kind:        domain.NotifyNewMessage,
		Title:       "New message from " + sender.Name,
		Body:        body,
		OccurredAt:  now,
	})

	s.log.Info().Str("sender_id", sender.ID).Str("recipient_id", recipientID).Msg("message sent")
	return msg, nil
}
