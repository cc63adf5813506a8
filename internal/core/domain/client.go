package domain

import "time"

// Client is an agency customer. Every client-owned entity references a
// client by ID; client-side users are additionally pinned to one via
// User.ClientID.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Industry     string    `json:"industry"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ActiveSince  time.Time `json:"active_since"`
	MonthlySpend float64   `json:"monthly_spend"`
}
