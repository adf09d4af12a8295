package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ActivitySvc interface {
	CreateVenue(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	CreateActivity(ctx context.Context, input domain.CreateActivityInput) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, id string, upd domain.ActivityUpdate) (*domain.Activity, error)
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	Generate(ctx context.Context, activityID string, horizonDays int) (int, error)
	SetSessionClosed(ctx context.Context, sessionID string, closed bool) error
}

type AvailabilitySvc interface {
	ListAvailable(ctx context.Context, activityID string, from, to time.Time) ([]*domain.Session, error)
}

type BookingSvc interface {
	Book(ctx context.Context, req domain.BookRequest) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID string) error
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	HandlePaymentResult(ctx context.Context, result domain.PaymentResult) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
}

type Handler struct {
	activityService     ActivitySvc
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
}

func NewHandler(activityService ActivitySvc, availabilityService AvailabilitySvc, bookingService BookingSvc) *Handler {
	return &Handler{
		activityService:     activityService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
	}
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.activityService.CreateVenue(c.Request.Context(), domain.CreateVenueInput{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Timezone:       req.Timezone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

// Activities

func (h *Handler) CreateActivity(c *ginext.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), domain.CreateActivityInput{
		VenueID:        req.VenueID,
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Capacity:       req.Capacity,
		PriceCents:     req.PriceCents,
		Schedule:       req.Schedule.ToDomain(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

func (h *Handler) GetActivity(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid activity id"})
		return
	}

	activity, err := h.activityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) UpdateActivity(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid activity id"})
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) GenerateSessions(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid activity id"})
		return
	}

	var req dto.GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	generated, err := h.activityService.Generate(c.Request.Context(), id, req.HorizonDays)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{Generated: generated})
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid activity id"})
		return
	}

	from, err := time.Parse(domain.DateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(domain.DateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
		return
	}
	// The "to" date is inclusive for callers: extend to the following midnight.
	to = to.AddDate(0, 0, 1)

	sessions, err := h.availabilityService.ListAvailable(c.Request.Context(), id, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Sessions

func (h *Handler) SetSessionClosed(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.activityService.SetSessionClosed(c.Request.Context(), id, *req.Closed); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.BookRequest{
		SessionID: req.SessionID,
		PartySize: req.PartySize,
		Customer: domain.CustomerDetails{
			FirstName: req.Customer.FirstName,
			LastName:  req.Customer.LastName,
			Email:     req.Customer.Email,
			Phone:     req.Customer.Phone,
		},
		PaymentIntentRef: req.PaymentIntentRef,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Complete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "completed"})
}

func (h *Handler) GetCustomerBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Webhooks

func (h *Handler) PaymentWebhook(c *ginext.Context) {
	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.HandlePaymentResult(c.Request.Context(), domain.PaymentResult{
		BookingID:  req.BookingID,
		PaymentRef: req.PaymentRef,
		Outcome:    domain.PaymentOutcome(req.Outcome),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrSessionClosed),
		errors.Is(err, domain.ErrBookingNotCancellable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrGenerationInProgress):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCustomerResolution):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
