package ports

import (
	"context"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// ContentService serves the campaign and content read models plus the
// messaging thread. Backed by the mock data layer; lists are scoped to the
// principal's client for client-side roles.
type ContentService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListCampaigns(ctx context.Context, role domain.Role, clientID string) ([]domain.Campaign, error)
	ListSocialPosts(ctx context.Context, role domain.Role, clientID string) ([]domain.SocialPost, error)
	ListBlogPosts(ctx context.Context, role domain.Role, clientID string) ([]domain.BlogPost, error)
	ListInvoices(ctx context.Context, role domain.Role, clientID string) ([]domain.Invoice, error)
	ListMessages(ctx context.Context, role domain.Role, clientID string) ([]domain.Message, error)
	SendMessage(ctx context.Context, sender *domain.User, recipientID, body string) (*domain.Message, error)
}
