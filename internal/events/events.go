// Package events defines message payloads published to the broker for
// downstream consumers (analytics rollups, exports) and the RabbitMQ
// publisher that delivers them.
package events

const (
	KeyBookingCreated    = "booking.created"
	KeyBookingConfirmed  = "booking.confirmed"
	KeyBookingCancelled  = "booking.cancelled"
	KeySessionsGenerated = "sessions.generated"
)

type BookingEvent struct {
	BookingID       string `json:"booking_id"`
	BookingNumber   string `json:"booking_number"`
	SessionID       string `json:"session_id"`
	ActivityID      string `json:"activity_id"`
	CustomerID      string `json:"customer_id"`
	OrganizationID  string `json:"organization_id"`
	PartySize       int    `json:"party_size"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	TotalPriceCents int64  `json:"total_price_cents"`
	OccurredAt      string `json:"occurred_at"`
}

type SessionsGeneratedEvent struct {
	ActivityID     string `json:"activity_id"`
	VenueID        string `json:"venue_id"`
	OrganizationID string `json:"organization_id"`
	Count          int    `json:"count"`
	GeneratedAt    string `json:"generated_at"`
}
