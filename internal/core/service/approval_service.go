package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// ApprovalService implements the content approval workflow. Decisions are
// authorized against the reviewer's permission set and fan out notification
// events to the dispatcher.
type ApprovalService struct {
	repo     ports.ApprovalRepository
	notifier ports.NotificationPublisher
	log      zerolog.Logger
}

func NewApprovalService(repo ports.ApprovalRepository, notifier ports.NotificationPublisher, log zerolog.Logger) *ApprovalService {
	return &ApprovalService{repo: repo, notifier: notifier, log: log}
}

func (s *ApprovalService) CreateApproval(ctx context.Context, role domain.Role, clientID string, input ports.CreateApprovalInput) (*domain.Approval, error) {
	if !domain.HasPermission(role, domain.PermCreateContent) {
		return nil, domain.ErrForbidden
	}
	if domain.IsClientRole(role) && input.ClientID != clientID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	approval := &domain.Approval{
		ID:          newID("apr"),
		ClientID:    input.ClientID,
		ProjectID:   input.ProjectID,
		ContentType: input.ContentType,
		Title:       input.Title,
		Body:        input.Body,
		Status:      domain.ApprovalPending,
		RequestedBy: input.RequestedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, approval); err != nil {
		s.log.Error().Err(err).Msg("failed to create approval")
		return nil, err
	}

	s.log.Info().Str("approval_id", approval.ID).Str("client_id", approval.ClientID).Msg("approval requested")
	return approval, nil
}

func (s *ApprovalService) ListApprovals(ctx context.Context, role domain.Role, clientID string, filter ports.ListApprovalsFilter) ([]*domain.Approval, error) {
	filter.ClientID = scope(role, clientID, filter.ClientID)
	return s.repo.List(ctx, filter)
}

// Decide applies a reviewer decision to a pending approval. The decision
// must be reachable from the current status and the reviewer must hold the
// matching permission.
func (s *ApprovalService) Decide(ctx context.Context, role domain.Role, clientID string, input ports.DecideApprovalInput) (*domain.Approval, error) {
	switch input.Decision {
	case domain.ApprovalApproved:
		if !domain.HasPermission(role, domain.PermApproveContent) {
			return nil, domain.ErrForbidden
		}
	case domain.ApprovalRejected, domain.ApprovalChangesRequested:
		if !domain.HasPermission(role, domain.PermRejectContent) {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, fmt.Errorf("%w: %q is not a decision", domain.ErrInvalidTransition, input.Decision)
	}

	approval, err := s.repo.FindByID(ctx, input.ApprovalID, scope(role, clientID, ""))
	if err != nil {
		return nil, err
	}

	if approval.Status != domain.ApprovalPending {
		return nil, domain.ErrApprovalDecided
	}
	if !approval.Status.CanTransitionTo(input.Decision) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, approval.Status, input.Decision)
	}

	now := time.Now().UTC()
	approval.Status = input.Decision
	approval.ReviewedBy = input.ReviewerID
	approval.ReviewNote = input.Note
	approval.ReviewedAt = now
	approval.UpdatedAt = now

	if err := s.repo.Update(ctx, approval); err != nil {
		s.log.Error().Err(err).Str("approval_id", approval.ID).Msg("failed to store decision")
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationEventInput{
		RecipientID: approval.RequestedBy,
		Kind:        domain.NotifyApprovalDecision,
		Title:       fmt.Sprintf("%q was %s", approval.Title, decisionLabel(input.Decision)),
		Body:        input.Note,
		OccurredAt:  now,
	})

	s.log.Info().
		Str("approval_id", approval.ID).
		Str("decision", string(input.Decision)).
		Str("reviewer", input.ReviewerID).
		Msg("approval decided")

	return approval, nil
}

func decisionLabel(s domain.ApprovalStatus) string {
	switch s {
	case domain.ApprovalApproved:
		return "approved"
	case domain.ApprovalRejected:
		return "rejected"
	case domain.ApprovalChangesRequested:
		return "sent back for changes"
	default:
		return string(s)
	}
}
