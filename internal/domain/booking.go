package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// CancellableStatuses are the states a booking may be cancelled from.
var CancellableStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// statusTransitions is the booking lifecycle edge set. completed and
// cancelled are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:    {PaymentStatusRefunded},
}

func CanTransition(from, to BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking is a claim of PartySize on one session's capacity. Status and
// PaymentStatus are independent axes: a booking can sit confirmed while
// payment capture is still pending. CapacityRestored guards the
// compensating capacity increment so cancellation credits exactly once.
type Booking struct {
	ID               string        `json:"id"`
	BookingNumber    string        `json:"booking_number"`
	SessionID        string        `json:"session_id"`
	ActivityID       string        `json:"activity_id"`
	CustomerID       string        `json:"customer_id"`
	OrganizationID   string        `json:"organization_id"`
	PartySize        int           `json:"party_size"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentRef       string        `json:"payment_ref,omitempty"`
	TotalPriceCents  int64         `json:"total_price_cents"`
	CapacityRestored bool          `json:"-"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type PaymentOutcome string

const (
	PaymentOutcomeSucceeded PaymentOutcome = "succeeded"
	PaymentOutcomeFailed    PaymentOutcome = "failed"
	PaymentOutcomeRefunded  PaymentOutcome = "refunded"
)

// PaymentResult is the structured content of a payment-provider webhook.
// The engine records the opaque reference; it never interprets it.
type PaymentResult struct {
	BookingID  string
	PaymentRef string
	Outcome    PaymentOutcome
}

func (r PaymentResult) Validate() error {
	switch r.Outcome {
	case PaymentOutcomeSucceeded, PaymentOutcomeFailed, PaymentOutcomeRefunded:
		return nil
	}
	return ErrInvalidTransition
}

// BookRequest carries everything the booking transaction needs. A non-empty
// PaymentIntentRef selects the payment-intent path (booking held pending
// until the webhook); an empty one is the legacy direct path (confirmed
// synchronously).
type BookRequest struct {
	SessionID        string
	PartySize        int
	Customer         CustomerDetails
	PaymentIntentRef string
}
