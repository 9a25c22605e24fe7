package domain

import "time"

// Buyer is keyed by its globally unique email. There is no registration
// flow; buyers are created implicitly at checkout with placeholder names.
type Buyer struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	BusinessName string    `json:"businessName"`
	ContactName  string    `json:"contactName"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	PlaceholderBusinessName = "Guest Guest"
	PlaceholderContactName  = "Guest"
)
