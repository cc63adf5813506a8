package ports

import (
	"context"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// ListApprovalsFilter carries query parameters for listing approvals.
type ListApprovalsFilter struct {
	ClientID string // empty = no filter (agency); non-empty = scoped to client
	Status   string // optional: filter by approval status
}

// ApprovalRepository defines persistence operations for approval requests.
type ApprovalRepository interface {
	Create(ctx context.Context, a *domain.Approval) error
	FindByID(ctx context.Context, id string, clientID string) (*domain.Approval, error)
	List(ctx context.Context, filter ListApprovalsFilter) ([]*domain.Approval, error)
	Update(ctx context.Context, a *domain.Approval) error
	// CountPending returns the number of pending approvals, scoped to
	// clientID when non-empty.
	CountPending(ctx context.Context, clientID string) (int64, error)
}

// CreateApprovalInput carries all data needed to open an approval request.
type CreateApprovalInput struct {
	ClientID    string
	ProjectID   string
	ContentType domain.ContentType
	Title       string
	Body        string
	RequestedBy string
}

// DecideApprovalInput carries a reviewer's decision on a pending approval.
type DecideApprovalInput struct {
	ApprovalID string
	Decision   domain.ApprovalStatus // approved, rejected, or changes_requested
	ReviewerID string
	Note       string
}

// ApprovalService defines use-case operations for the approval workflow.
type ApprovalService interface {
	CreateApproval(ctx context.Context, role domain.Role, clientID string, input CreateApprovalInput) (*domain.Approval, error)
	ListApprovals(ctx context.Context, role domain.Role, clientID string, filter ListApprovalsFilter) ([]*domain.Approval, error)
	// Decide applies a reviewer decision. The reviewer's role must hold the
	// permission matching the decision (approve_content / reject_content).
	Decide(ctx context.Context, role domain.Role, clientID string, input DecideApprovalInput) (*domain.Approval, error)
}
