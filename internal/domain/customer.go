package domain

import (
	"strings"
	"time"
)

// Customer identity is keyed by (organization, normalized email). Created
// lazily on first booking. The aggregate counters are derived convenience
// values, not authoritative billing records.
type Customer struct {
	ID              string    `json:"id"`
	OrganizationID  string    `json:"organization_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	TotalBookings   int       `json:"total_bookings"`
	TotalSpentCents int64     `json:"total_spent_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type CustomerDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// NormalizeEmail canonicalizes an email for identity matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
