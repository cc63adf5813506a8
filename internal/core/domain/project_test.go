package domain

import "testing"

func TestProjectStatus_CanTransitionTo(t *testing.T) {
	valid := []struct{ from, to ProjectStatus }{
		{ProjectPlanning, ProjectInProgress},
		{ProjectPlanning, ProjectCancelled},
		{ProjectInProgress, ProjectReview},
		{ProjectInProgress, ProjectCancelled},
		{ProjectReview, ProjectInProgress},
		{ProjectReview, ProjectCompleted},
		{ProjectReview, ProjectCancelled},
	}
	for _, tc := range valid {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be valid", tc.from, tc.to)
		}
	}

	invalid := []struct{ from, to ProjectStatus }{
		{ProjectPlanning, ProjectCompleted},
		{ProjectCompleted, ProjectInProgress},
		{ProjectCancelled, ProjectPlanning},
		{ProjectInProgress, ProjectPlanning},
	}
	for _, tc := range invalid {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be invalid", tc.from, tc.to)
		}
	}
}

func TestApprovalStatus_CanTransitionTo(t *testing.T) {
	for _, decision := range []ApprovalStatus{ApprovalApproved, ApprovalRejected, ApprovalChangesRequested} {
		if !ApprovalPending.CanTransitionTo(decision) {
			t.Fatalf("pending must allow %s", decision)
		}
	}
	if !ApprovalChangesRequested.CanTransitionTo(ApprovalPending) {
		t.Fatalf("changes_requested must return to pending")
	}
	// Approved and rejected are terminal.
	for _, terminal := range []ApprovalStatus{ApprovalApproved, ApprovalRejected} {
		for _, next := range []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalChangesRequested} {
			if terminal.CanTransitionTo(next) {
				t.Fatalf("%s must be terminal, allowed %s", terminal, next)
			}
		}
	}
}
