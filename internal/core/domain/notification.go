package domain

import "time"

// NotificationKind classifies what triggered a notification.
type NotificationKind string

const (
	NotifyApprovalDecision NotificationKind = "approval_decision"
	NotifyApprovalRequest  NotificationKind = "approval_request"
	NotifyNewMessage       NotificationKind = "new_message"
	NotifyInvoiceDue       NotificationKind = "invoice_due"
	NotifyDeadline         NotificationKind = "deadline"
)

// Notification is a per-user inbox entry.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Body        string           `json:"body,omitempty"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"created_at"`
}
