package domain

import "time"

// ApprovalStatus represents the review state of a content approval request.
type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "pending"
	ApprovalApproved         ApprovalStatus = "approved"
	ApprovalRejected         ApprovalStatus = "rejected"
	ApprovalChangesRequested ApprovalStatus = "changes_requested"
)

// approvalTransitions defines the allowed decision transitions. A request
// with changes requested returns to pending once the content is revised;
// approved and rejected are terminal.
var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalPending:          {ApprovalApproved, ApprovalRejected, ApprovalChangesRequested},
	ApprovalChangesRequested: {ApprovalPending},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	for _, allowed := range approvalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Approval is a client-facing request to sign off on a piece of content
// before it is published.
type Approval struct {
	ID          string         `json:"id" bson:"_id"`
	ClientID    string         `json:"client_id" bson:"client_id"`
	ProjectID   string         `json:"project_id,omitempty" bson:"project_id,omitempty"`
	ContentType ContentType    `json:"content_type" bson:"content_type"`
	Title       string         `json:"title" bson:"title"`
	Body        string         `json:"body,omitempty" bson:"body,omitempty"`
	Status      ApprovalStatus `json:"status" bson:"status"`
	RequestedBy string         `json:"requested_by" bson:"requested_by"`
	ReviewedBy  string         `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewNote  string         `json:"review_note,omitempty" bson:"review_note,omitempty"`
	ReviewedAt  time.Time      `json:"reviewed_at,omitzero" bson:"reviewed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
