package domain

import "time"

// Message is a single entry in the agency/client conversation thread.
type Message struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	SentAt      time.Time `json:"sent_at"`
}
