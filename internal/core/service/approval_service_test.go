package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

func seedApproval(t *testing.T, svc *ApprovalService, clientID string) *domain.Approval {
	t.Helper()
	a, err := svc.CreateApproval(context.Background(), domain.RoleAgencyStaff, "", ports.CreateApprovalInput{
		ClientID:    clientID,
		ContentType: domain.ContentSocialPost,
		Title:       "June launch teaser",
		RequestedBy: "user_010",
	})
	if err != nil {
		t.Fatalf("CreateApproval: %v", err)
	}
	return a
}

func TestApprovalService_Create_RequiresCreateContent(t *testing.T) {
	svc := NewApprovalService(newStubApprovalRepo(), &capturePublisher{}, zerolog.Nop())

	// client_user lacks create_content
	_, err := svc.CreateApproval(context.Background(), domain.RoleClientUser, "client_001", ports.CreateApprovalInput{
		ClientID: "client_001",
		Title:    "x",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApprovalService_Decide_Approve(t *testing.T) {
	pub := &capturePublisher{}
	svc := NewApprovalService(newStubApprovalRepo(), pub, zerolog.Nop())
	a := seedApproval(t, svc, "client_001")

	decided, err := svc.Decide(context.Background(), domain.RoleClientAdmin, "client_001", ports.DecideApprovalInput{
		ApprovalID: a.ID,
		Decision:   domain.ApprovalApproved,
		ReviewerID: "user_020",
		Note:       "looks great",
	})
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decided.Status != domain.ApprovalApproved || decided.ReviewedBy != "user_020" {
		t.Fatalf("decision not recorded: %+v", decided)
	}
	if decided.ReviewedAt.IsZero() {
		t.Fatalf("reviewed_at not set")
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected one notification event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.RecipientID != "user_010" || ev.Kind != domain.NotifyApprovalDecision {
		t.Fatalf("unexpected notification: %+v", ev)
	}
}

func TestApprovalService_Decide_PermissionPerDecision(t *testing.T) {
	svc := NewApprovalService(newStubApprovalRepo(), &capturePublisher{}, zerolog.Nop())
	a := seedApproval(t, svc, "client_001")
	ctx := context.Background()

	// client_user holds neither approve_content nor reject_content.
	if _, err := svc.Decide(ctx, domain.RoleClientUser, "client_001", ports.DecideApprovalInput{
		ApprovalID: a.ID, Decision: domain.ApprovalApproved,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("client_user approve: expected ErrForbidden, got %v", err)
	}

	// agency_staff cannot approve either.
	if _, err := svc.Decide(ctx, domain.RoleAgencyStaff, "", ports.DecideApprovalInput{
		ApprovalID: a.ID, Decision: domain.ApprovalRejected,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("agency_staff reject: expected ErrForbidden, got %v", err)
	}
}

func TestApprovalService_Decide_AlreadyDecided(t *testing.T) {
	svc := NewApprovalService(newStubApprovalRepo(), &capturePublisher{}, zerolog.Nop())
	a := seedApproval(t, svc, "client_001")
	ctx := context.Background()

	if _, err := svc.Decide(ctx, domain.RoleClientAdmin, "client_001", ports.DecideApprovalInput{
		ApprovalID: a.ID, Decision: domain.ApprovalRejected, ReviewerID: "user_020",
	}); err != nil {
		t.Fatalf("first decision: %v", err)
	}

	if _, err := svc.Decide(ctx, domain.RoleClientAdmin, "client_001", ports.DecideApprovalInput{
		ApprovalID: a.ID, Decision: domain.ApprovalApproved, ReviewerID: "user_020",
	}); !errors.Is(err, domain.ErrApprovalDecided) {
		t.Fatalf("expected ErrApprovalDecided, got %v", err)
	}
}

func TestApprovalService_Decide_InvalidDecision(t *testing.T) {
	svc := NewApprovalService(newStubApprovalRepo(), &capturePublisher{}, zerolog.Nop())
	a := seedApproval(t, svc, "client_001")

	if _, err := svc.Decide(context.Background(), domain.RoleAgencyAdmin, "", ports.DecideApprovalInput{
		ApprovalID: a.ID, Decision: domain.ApprovalPending,
	}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApprovalService_List_ScopedForClientRoles(t *testing.T) {
	repo := newStubApprovalRepo()
	svc := NewApprovalService(repo, &capturePublisher{}, zerolog.Nop())
	seedApproval(t, svc, "client_001")
	seedApproval(t, svc, "client_002")

	mine, err := svc.ListApprovals(context.Background(), domain.RoleClientAdmin, "client_001", ports.ListApprovalsFilter{})
	if err != nil {
		t.Fatalf("ListApprovals: %v", err)
	}
	for _, a := range mine {
		if a.ClientID != "client_001" {
			t.Fatalf("leaked approval for %s", a.ClientID)
		}
	}

	all, err := svc.ListApprovals(context.Background(), domain.RoleAgencyAdmin, "", ports.ListApprovalsFilter{})
	if err != nil {
		t.Fatalf("ListApprovals agency: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("agency should see both approvals, got %d", len(all))
	}
}
