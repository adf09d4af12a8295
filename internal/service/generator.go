package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/events"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/schedule"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type GeneratorService struct {
	activityRepo ports.ActivityRepo
	venueRepo    ports.VenueRepo
	sessionRepo  ports.SessionRepo
	publisher    ports.EventPublisher
	logger       logger.Logger
	horizonDays  int
	chunkSize    int
	now          func() time.Time
}

func NewGeneratorService(
	activityRepo ports.ActivityRepo,
	venueRepo ports.VenueRepo,
	sessionRepo ports.SessionRepo,
	publisher ports.EventPublisher,
	logger logger.Logger,
	horizonDays int,
	chunkSize int,
) *GeneratorService {
	return &GeneratorService{
		activityRepo: activityRepo,
		venueRepo:    venueRepo,
		sessionRepo:  sessionRepo,
		publisher:    publisher,
		logger:       logger,
		horizonDays:  horizonDays,
		chunkSize:    chunkSize,
		now:          time.Now,
	}
}

// Generate expands the activity's schedule rules into sessions covering
// [resumeDate, today+horizonDays) in the venue's timezone. The resume date
// is the day after the latest stored start time, so repeated invocations
// neither duplicate nor gap slots; there is no separate generation ledger.
// Returns the number of sessions written.
func (s *GeneratorService) Generate(ctx context.Context, activityID string, horizonDays int) (int, error) {
	if horizonDays <= 0 {
		horizonDays = s.horizonDays
	}

	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return 0, fmt.Errorf("load activity: %w", err)
	}
	if err = activity.Schedule.Validate(); err != nil {
		return 0, fmt.Errorf("schedule rules: %w", err)
	}

	venue, err := s.venueRepo.GetByID(ctx, activity.VenueID)
	if err != nil {
		return 0, fmt.Errorf("load venue: %w", err)
	}
	loc, err := time.LoadLocation(venue.Timezone)
	if err != nil {
		return 0, fmt.Errorf("%w: venue timezone %q", domain.ErrValidation, venue.Timezone)
	}

	// Two generation runs for the same activity would race on the resume
	// date, so they are serialized; the loser backs off entirely.
	release, ok, err := s.sessionRepo.AcquireGenerationLock(ctx, activityID)
	if err != nil {
		return 0, fmt.Errorf("generation lock: %w", err)
	}
	if !ok {
		return 0, domain.ErrGenerationInProgress
	}
	defer release()

	year, month, day := schedule.CivilDate(s.now(), loc)
	today := time.Date(year, month, day, 12, 0, 0, 0, loc)

	start := today
	if latest, exists, err := s.sessionRepo.LatestStartTime(ctx, activityID); err != nil {
		return 0, fmt.Errorf("resume point: %w", err)
	} else if exists {
		y, m, d := schedule.CivilDate(latest, loc)
		next := time.Date(y, m, d, 12, 0, 0, 0, loc).AddDate(0, 0, 1)
		if next.After(start) {
			start = next
		}
	}
	end := today.AddDate(0, 0, horizonDays)

	generated := 0
	var batch []*domain.Session
	for date := start; date.Before(end); date = date.AddDate(0, 0, 1) {
		y, m, d := date.Year(), date.Month(), date.Day()
		slots, err := schedule.ExpandDay(activity.Schedule, y, m, d, loc)
		if err != nil {
			return generated, fmt.Errorf("expand %04d-%02d-%02d: %w", y, int(m), d, err)
		}

		now := s.now().UTC()
		for _, slot := range slots {
			batch = append(batch, &domain.Session{
				ID:                uuid.New().String(),
				ActivityID:        activity.ID,
				VenueID:           activity.VenueID,
				OrganizationID:    activity.OrganizationID,
				StartTime:         slot.Start,
				EndTime:           slot.End,
				CapacityTotal:     activity.Capacity,
				CapacityRemaining: activity.Capacity,
				PriceCents:        activity.PriceCents,
				CreatedAt:         now,
			})
		}

		if len(batch) >= s.chunkSize {
			if err = s.sessionRepo.BulkInsert(ctx, batch); err != nil {
				// Abort the run: the resume point only advances over rows
				// that actually committed, so a retry picks up cleanly.
				return generated, fmt.Errorf("store sessions: %w", err)
			}
			generated += len(batch)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err = s.sessionRepo.BulkInsert(ctx, batch); err != nil {
			return generated, fmt.Errorf("store sessions: %w", err)
		}
		generated += len(batch)
	}

	s.logger.Info("sessions generated",
		logger.String("activity_id", activityID),
		logger.Int("count", generated),
		logger.Int("horizon_days", horizonDays),
	)

	if generated > 0 {
		s.publish(ctx, activity, generated)
	}

	return generated, nil
}

// RefreshAll rolls the generation window forward for every activity.
// Activities are independent; one failure does not stop the others.
func (s *GeneratorService) RefreshAll(ctx context.Context) error {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	for _, a := range activities {
		if _, err := s.Generate(ctx, a.ID, s.horizonDays); err != nil {
			s.logger.Error("rolling generation failed",
				logger.String("activity_id", a.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (s *GeneratorService) publish(ctx context.Context, activity *domain.Activity, count int) {
	event := events.SessionsGeneratedEvent{
		ActivityID:     activity.ID,
		VenueID:        activity.VenueID,
		OrganizationID: activity.OrganizationID,
		Count:          count,
		GeneratedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.Publish(ctx, events.KeySessionsGenerated, event); err != nil {
		s.logger.Error("failed to publish generation event",
			logger.String("activity_id", activity.ID),
			logger.String("error", err.Error()),
		)
	}
}
