package entity

import "time"

const (
	// QuoteValidity is how long a quote stays active after creation.
	QuoteValidity = 7 * 24 * time.Hour

	// QuoteIDLength is the length of the public, shareable quote token.
	QuoteIDLength = 8
)

type Quote struct {
	ID           string    `json:"id"`
	QuoteID      string    `json:"quote_id"`
	Email        string    `json:"email"`
	ToolName     string    `json:"tool_name"`
	SelectedPlan string    `json:"selected_plan,omitempty"`
	DiscountCode string    `json:"discount_code,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	Reminded     bool      `json:"reminded"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired reports the derived lifecycle state. It is never stored.
func (q *Quote) Expired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}
