package scheduler

import (
	"context"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type SessionRefresher interface {
	RefreshAll(ctx context.Context) error
}

type BookingExpirer interface {
	ExpireStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
}

// Scheduler drives the two background loops of the engine: rolling the
// session generation window forward and sweeping payment-intent bookings
// whose webhook never arrived.
type Scheduler struct {
	refresher       SessionRefresher
	expirer         BookingExpirer
	refreshInterval time.Duration
	expireInterval  time.Duration
	pendingTTL      time.Duration
	logger          logger.Logger
}

func New(
	refresher SessionRefresher,
	expirer BookingExpirer,
	refreshInterval time.Duration,
	expireInterval time.Duration,
	pendingTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		refresher:       refresher,
		expirer:         expirer,
		refreshInterval: refreshInterval,
		expireInterval:  expireInterval,
		pendingTTL:      pendingTTL,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	refresh := time.NewTicker(s.refreshInterval)
	defer refresh.Stop()
	expire := time.NewTicker(s.expireInterval)
	defer expire.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("refresh_interval", s.refreshInterval),
		logger.Duration("expire_interval", s.expireInterval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-refresh.C:
			s.refreshTick(ctx)
		case <-expire.C:
			s.expireTick(ctx)
		}
	}
}

func (s *Scheduler) refreshTick(ctx context.Context) {
	if err := s.refresher.RefreshAll(ctx); err != nil {
		s.logger.Error("failed to refresh session windows",
			logger.String("error", err.Error()),
		)
	}
}

func (s *Scheduler) expireTick(ctx context.Context) {
	cancelled, err := s.expirer.ExpireStalePending(ctx, s.pendingTTL)
	if err != nil {
		s.logger.Error("failed to expire stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale booking expired",
			logger.String("booking_id", b.ID),
			logger.String("session_id", b.SessionID),
		)
	}
}
