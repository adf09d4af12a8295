package ports

import (
	"context"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
)

type BookingRepo interface {
	// Create runs the booking transaction: conditional capacity decrement,
	// booking insert, customer aggregate bump — one unit, all or nothing.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	// Cancel transitions the booking to cancelled and restores its capacity
	// claim exactly once; a second call fails without double-crediting.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	Complete(ctx context.Context, id string) error
	RecordPaymentResult(ctx context.Context, res domain.PaymentResult) (*domain.Booking, error)
	// CancelStalePending sweeps payment-intent bookings that never saw a
	// webhook, restoring their capacity in the same transaction.
	CancelStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
}
