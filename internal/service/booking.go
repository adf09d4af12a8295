package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/events"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	sessionRepo  ports.SessionRepo
	activityRepo ports.ActivityRepo
	resolver     CustomerResolver
	notifier     ports.BookingNotifier
	publisher    ports.EventPublisher
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	sessionRepo ports.SessionRepo,
	activityRepo ports.ActivityRepo,
	resolver CustomerResolver,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		sessionRepo:  sessionRepo,
		activityRepo: activityRepo,
		resolver:     resolver,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
	}
}

// Book converts a booking request into a capacity-safe reservation. The
// customer is resolved first (a customer row without a booking is harmless);
// the capacity decrement, booking insert and aggregate bump then commit as
// one transaction in the repository. A request carrying a payment intent is
// held pending until the webhook; the legacy direct path confirms
// synchronously.
func (s *BookingService) Book(ctx context.Context, req domain.BookRequest) (*domain.Booking, error) {
	if req.PartySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	customer, err := s.resolver.Resolve(ctx, session.OrganizationID, req.Customer)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrCustomerResolution, err)
	}

	status := domain.BookingStatusConfirmed
	paymentStatus := domain.PaymentStatusPending
	if req.PaymentIntentRef != "" {
		status = domain.BookingStatusPending
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		BookingNumber:   newBookingNumber(),
		SessionID:       session.ID,
		ActivityID:      session.ActivityID,
		CustomerID:      customer.ID,
		OrganizationID:  session.OrganizationID,
		PartySize:       req.PartySize,
		Status:          status,
		PaymentStatus:   paymentStatus,
		PaymentRef:      req.PaymentIntentRef,
		TotalPriceCents: session.PriceCents * int64(req.PartySize),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("booking_number", booking.BookingNumber),
		logger.String("session_id", session.ID),
		logger.Int("party_size", booking.PartySize),
	)

	s.publishBooking(ctx, events.KeyBookingCreated, booking)
	if booking.Status == domain.BookingStatusConfirmed {
		s.publishBooking(ctx, events.KeyBookingConfirmed, booking)
		go s.notifyConfirmed(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}

// Cancel transitions a booking to cancelled and restores its capacity claim
// exactly once (the repository enforces the guard).
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("session_id", booking.SessionID),
	)

	s.publishBooking(ctx, events.KeyBookingCancelled, booking)
	go s.notifyCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) Complete(ctx context.Context, bookingID string) error {
	if err := s.bookingRepo.Complete(ctx, bookingID); err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}

	s.logger.Info("booking completed", logger.String("booking_id", bookingID))
	return nil
}

// HandlePaymentResult applies a payment webhook. A successful capture
// confirms a pending payment-intent booking; failures and refunds only move
// the payment axis.
func (s *BookingService) HandlePaymentResult(ctx context.Context, result domain.PaymentResult) (*domain.Booking, error) {
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: unknown payment outcome %q", domain.ErrValidation, result.Outcome)
	}

	booking, err := s.bookingRepo.RecordPaymentResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("record payment result: %w", err)
	}

	s.logger.Info("payment result recorded",
		logger.String("booking_id", booking.ID),
		logger.String("outcome", string(result.Outcome)),
		logger.String("payment_status", string(booking.PaymentStatus)),
	)

	if result.Outcome == domain.PaymentOutcomeSucceeded {
		s.publishBooking(ctx, events.KeyBookingConfirmed, booking)
		go s.notifyConfirmed(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}

// ExpireStalePending sweeps payment-intent bookings whose webhook never
// arrived, releasing their capacity.
func (s *BookingService) ExpireStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStalePending(ctx, olderThan)
	if err != nil {
		return nil, fmt.Errorf("expire stale pending: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
		go func(ctx context.Context) {
			for _, b := range cancelled {
				s.publishBooking(ctx, events.KeyBookingCancelled, b)
				s.notifyCancelled(ctx, b)
			}
		}(context.WithoutCancel(ctx))
	}

	return cancelled, nil
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

func (s *BookingService) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) publishBooking(ctx context.Context, key string, b *domain.Booking) {
	event := events.BookingEvent{
		BookingID:       b.ID,
		BookingNumber:   b.BookingNumber,
		SessionID:       b.SessionID,
		ActivityID:      b.ActivityID,
		CustomerID:      b.CustomerID,
		OrganizationID:  b.OrganizationID,
		PartySize:       b.PartySize,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		TotalPriceCents: b.TotalPriceCents,
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.logger.Error("failed to publish booking event",
			logger.String("booking_id", b.ID),
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) notifyConfirmed(ctx context.Context, b *domain.Booking) {
	session, activity, ok := s.bookingContext(ctx, b)
	if !ok {
		return
	}
	s.notifier.NotifyBookingConfirmed(ctx, b, session, activity)
}

func (s *BookingService) notifyCancelled(ctx context.Context, b *domain.Booking) {
	session, activity, ok := s.bookingContext(ctx, b)
	if !ok {
		return
	}
	s.notifier.NotifyBookingCancelled(ctx, b, session, activity)
}

func (s *BookingService) bookingContext(ctx context.Context, b *domain.Booking) (*domain.Session, *domain.Activity, bool) {
	session, err := s.sessionRepo.GetByID(ctx, b.SessionID)
	if err != nil {
		s.logger.Error("failed to get session for notification",
			logger.String("session_id", b.SessionID),
		)
		return nil, nil, false
	}
	activity, err := s.activityRepo.GetByID(ctx, b.ActivityID)
	if err != nil {
		s.logger.Error("failed to get activity for notification",
			logger.String("activity_id", b.ActivityID),
		)
		return nil, nil, false
	}
	return session, activity, true
}

func newBookingNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BTS-" + strings.ToUpper(raw[:8])
}
