package domain

import "time"

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice bills one client for a period of agency work.
type Invoice struct {
	ID         string        `json:"id"`
	Number     string        `json:"number"`
	ClientID   string        `json:"client_id"`
	ClientName string        `json:"client_name"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	Status     InvoiceStatus `json:"status"`
	IssuedAt   time.Time     `json:"issued_at"`
	DueAt      time.Time     `json:"due_at"`
}
