package domain

import "time"

// Session is a single unit of bookable inventory. StartTime/EndTime are UTC
// instants; timezone conversion happens exactly once, inside the generator.
// CapacityRemaining is mutated only by the booking transaction (decrement)
// and by cancellation (bounded increment).
type Session struct {
	ID                string    `json:"id"`
	ActivityID        string    `json:"activity_id"`
	VenueID           string    `json:"venue_id"`
	OrganizationID    string    `json:"organization_id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	CapacityTotal     int       `json:"capacity_total"`
	CapacityRemaining int       `json:"capacity_remaining"`
	PriceCents        int64     `json:"price_cents"`
	IsClosed          bool      `json:"is_closed"`
	CreatedAt         time.Time `json:"created_at"`
}
