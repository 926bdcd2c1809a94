package entity

import "time"

// DefaultLeadSource is applied when a submission carries no origin tag.
const DefaultLeadSource = "website"

type Lead struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	PageURL   string    `json:"page_url,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
