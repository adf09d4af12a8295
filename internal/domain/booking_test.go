package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"confirmed to completed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"no self transition", BookingStatusPending, BookingStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestCanTransitionPayment(t *testing.T) {
	cases := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"pending to paid", PaymentStatusPending, PaymentStatusPaid, true},
		{"pending to failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending to refunded", PaymentStatusPending, PaymentStatusRefunded, false},
		{"paid to refunded", PaymentStatusPaid, PaymentStatusRefunded, true},
		{"paid to failed", PaymentStatusPaid, PaymentStatusFailed, false},
		{"failed is terminal", PaymentStatusFailed, PaymentStatusPaid, false},
		{"refunded is terminal", PaymentStatusRefunded, PaymentStatusPaid, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransitionPayment(tc.from, tc.to))
		})
	}
}

func TestPaymentResultValidate(t *testing.T) {
	assert.NoError(t, PaymentResult{Outcome: PaymentOutcomeSucceeded}.Validate())
	assert.NoError(t, PaymentResult{Outcome: PaymentOutcomeFailed}.Validate())
	assert.NoError(t, PaymentResult{Outcome: PaymentOutcomeRefunded}.Validate())
	assert.ErrorIs(t, PaymentResult{Outcome: "chargeback"}.Validate(), ErrInvalidTransition)
}
