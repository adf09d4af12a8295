package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityService struct {
	activityRepo ports.ActivityRepo
	sessionRepo  ports.SessionRepo
	cache        ports.AvailabilityCache
	cacheTTL     time.Duration
	logger       logger.Logger
	now          func() time.Time
}

// NewAvailabilityService builds the availability reader. cache may be nil,
// in which case every read hits the store directly.
func NewAvailabilityService(
	activityRepo ports.ActivityRepo,
	sessionRepo ports.SessionRepo,
	cache ports.AvailabilityCache,
	cacheTTL time.Duration,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// ListAvailable returns open sessions with remaining capacity overlapping
// [from, to), ordered by start time. The activity's advance-booking lead
// time clamps the window start; an empty result is not an error.
func (s *AvailabilityService) ListAvailable(ctx context.Context, activityID string, from, to time.Time) ([]*domain.Session, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: availability window start must be before end", domain.ErrValidation)
	}

	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}

	if lead := activity.Schedule.AdvanceBookingDays; lead > 0 {
		earliest := s.now().UTC().AddDate(0, 0, lead)
		if from.Before(earliest) {
			from = earliest
		}
		if !from.Before(to) {
			return []*domain.Session{}, nil
		}
	}

	key := fmt.Sprintf("availability:%s:%d:%d", activityID, from.Unix(), to.Unix())
	if s.cache != nil {
		if payload, hit, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Error("availability cache read failed", logger.String("error", err.Error()))
		} else if hit {
			var sessions []*domain.Session
			if err := json.Unmarshal(payload, &sessions); err == nil {
				return sessions, nil
			}
		}
	}

	sessions, err := s.sessionRepo.ListAvailable(ctx, activityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list available: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(sessions); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
				s.logger.Error("availability cache write failed", logger.String("error", err.Error()))
			}
		}
	}

	return sessions, nil
}
