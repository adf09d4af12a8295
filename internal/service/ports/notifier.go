package ports

import (
	"context"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, s *domain.Session, a *domain.Activity)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, s *domain.Session, a *domain.Activity)
}
