package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SessionGenerator is the slice of the generator the activity service needs
// to roll sessions out after create/update.
type SessionGenerator interface {
	Generate(ctx context.Context, activityID string, horizonDays int) (int, error)
}

type ActivityService struct {
	venueRepo    ports.VenueRepo
	activityRepo ports.ActivityRepo
	sessionRepo  ports.SessionRepo
	generator    SessionGenerator
	logger       logger.Logger
}

func NewActivityService(
	venueRepo ports.VenueRepo,
	activityRepo ports.ActivityRepo,
	sessionRepo ports.SessionRepo,
	generator SessionGenerator,
	logger logger.Logger,
) *ActivityService {
	return &ActivityService{
		venueRepo:    venueRepo,
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		generator:    generator,
		logger:       logger,
	}
}

func (s *ActivityService) CreateVenue(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: venue name is required", domain.ErrValidation)
	}
	if input.OrganizationID == "" {
		return nil, fmt.Errorf("%w: organization id is required", domain.ErrValidation)
	}
	if _, err := time.LoadLocation(input.Timezone); err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrValidation, input.Timezone)
	}

	venue := &domain.Venue{
		ID:             uuid.New().String(),
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Timezone:       input.Timezone,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

// CreateActivity persists the activity and kicks off generation of its
// forward session window in the background.
func (s *ActivityService) CreateActivity(ctx context.Context, input domain.CreateActivityInput) (*domain.Activity, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if err := input.Schedule.Validate(); err != nil {
		return nil, err
	}

	venue, err := s.venueRepo.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("load venue: %w", err)
	}

	activity := &domain.Activity{
		ID:             uuid.New().String(),
		VenueID:        venue.ID,
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Capacity:       input.Capacity,
		PriceCents:     input.PriceCents,
		Schedule:       input.Schedule,
	}

	if err = s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.generateAsync(ctx, activity.ID)

	return activity, nil
}

// UpdateActivity applies a typed field-by-field update. A schedule change
// re-triggers generation; price and capacity changes only affect sessions
// generated from now on — existing snapshots stay untouched.
func (s *ActivityService) UpdateActivity(ctx context.Context, id string, upd domain.ActivityUpdate) (*domain.Activity, error) {
	if upd.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	if upd.Schedule != nil {
		s.generateAsync(ctx, activity.ID)
	}

	return activity, nil
}

func (s *ActivityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activityRepo.GetByID(ctx, id)
}

func (s *ActivityService) Generate(ctx context.Context, activityID string, horizonDays int) (int, error) {
	return s.generator.Generate(ctx, activityID, horizonDays)
}

// SetSessionClosed is the manual availability override: a closed session
// stays stored but stops being offered.
func (s *ActivityService) SetSessionClosed(ctx context.Context, sessionID string, closed bool) error {
	return s.sessionRepo.SetClosed(ctx, sessionID, closed)
}

func (s *ActivityService) generateAsync(ctx context.Context, activityID string) {
	go func(ctx context.Context) {
		if _, err := s.generator.Generate(ctx, activityID, 0); err != nil {
			s.logger.Error("background generation failed",
				logger.String("activity_id", activityID),
				logger.String("error", err.Error()),
			)
		}
	}(context.WithoutCancel(ctx))
}
