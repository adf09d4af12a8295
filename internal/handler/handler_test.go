package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/handler/dto"
	hmocks "github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockActivitySvc, *hmocks.MockAvailabilitySvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	activitySvc := hmocks.NewMockActivitySvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(activitySvc, availabilitySvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/venues", h.CreateVenue)
		api.POST("/activities", h.CreateActivity)
		api.GET("/activities/:id", h.GetActivity)
		api.PATCH("/activities/:id", h.UpdateActivity)
		api.POST("/activities/:id/generate", h.GenerateSessions)
		api.GET("/activities/:id/availability", h.GetAvailability)
		api.PATCH("/sessions/:id/closed", h.SetSessionClosed)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.GET("/customers/:id/bookings", h.GetCustomerBookings)
		api.POST("/webhooks/payment", h.PaymentWebhook)
	}

	return activitySvc, availabilitySvc, bookingSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	activitySvc, _, _, r := setupRouter(t)

	venue := &domain.Venue{
		ID:             uuid.New().String(),
		OrganizationID: "org1",
		Name:           "Downtown",
		Timezone:       "America/New_York",
		CreatedAt:      time.Now().UTC(),
	}
	activitySvc.EXPECT().CreateVenue(mock.Anything, mock.Anything).Return(venue, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{
		OrganizationID: "org1",
		Name:           "Downtown",
		Timezone:       "America/New_York",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, venue.ID, resp.ID)
	assert.Equal(t, "America/New_York", resp.Timezone)
}

func TestHandler_CreateVenue_MissingFields(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/venues", map[string]string{"name": "Downtown"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Activities ---

func validScheduleDTO() dto.ScheduleRules {
	return dto.ScheduleRules{
		OperatingDays:       []string{"monday", "wednesday", "friday"},
		StartTime:           "10:00",
		EndTime:             "18:00",
		SlotIntervalMinutes: 60,
	}
}

func TestHandler_CreateActivity_Success(t *testing.T) {
	activitySvc, _, _, r := setupRouter(t)

	activity := &domain.Activity{
		ID:         uuid.New().String(),
		VenueID:    uuid.New().String(),
		Name:       "Escape Room",
		Capacity:   8,
		PriceCents: 4500,
	}
	activitySvc.EXPECT().CreateActivity(mock.Anything, mock.Anything).Return(activity, nil)

	w := doJSON(t, r, http.MethodPost, "/api/activities", dto.CreateActivityRequest{
		VenueID:        activity.VenueID,
		OrganizationID: "org1",
		Name:           "Escape Room",
		Capacity:       8,
		PriceCents:     4500,
		Schedule:       validScheduleDTO(),
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, activity.ID, resp.ID)
}

func TestHandler_GetActivity_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/activities/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetActivity_NotFound(t *testing.T) {
	activitySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	activitySvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrActivityNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/activities/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateActivity_Success(t *testing.T) {
	activitySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	updated := &domain.Activity{ID: id, Name: "Axe Throwing", Capacity: 10}
	activitySvc.EXPECT().UpdateActivity(mock.Anything, id, mock.Anything).Return(updated, nil)

	name := "Axe Throwing"
	w := doJSON(t, r, http.MethodPatch, "/api/activities/"+id, dto.UpdateActivityRequest{Name: &name})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Axe Throwing", resp.Name)
}

func TestHandler_GenerateSessions_Success(t *testing.T) {
	activitySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	activitySvc.EXPECT().Generate(mock.Anything, id, 14).Return(42, nil)

	w := doJSON(t, r, http.MethodPost, "/api/activities/"+id+"/generate", dto.GenerateRequest{HorizonDays: 14})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.Generated)
}

func TestHandler_GenerateSessions_Conflict(t *testing.T) {
	activitySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	activitySvc.EXPECT().Generate(mock.Anything, id, 0).Return(0, domain.ErrGenerationInProgress)

	w := doJSON(t, r, http.MethodPost, "/api/activities/"+id+"/generate", dto.GenerateRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	_, availabilitySvc, _, r := setupRouter(t)

	id := uuid.New().String()
	from := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC) // inclusive "to" plus one day

	sessions := []*domain.Session{
		{ID: uuid.New().String(), ActivityID: id, CapacityRemaining: 5},
	}
	availabilitySvc.EXPECT().ListAvailable(mock.Anything, id, from, to).Return(sessions, nil)

	w := doJSON(t, r, http.MethodGet, "/api/activities/"+id+"/availability?from=2025-06-02&to=2025-06-08", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 5, resp[0].CapacityRemaining)
}

func TestHandler_GetAvailability_BadDates(t *testing.T) {
	_, _, _, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodGet, "/api/activities/"+id+"/availability?from=junk&to=2025-06-08", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_EmptyResultIsArray(t *testing.T) {
	_, availabilitySvc, _, r := setupRouter(t)

	id := uuid.New().String()
	availabilitySvc.EXPECT().ListAvailable(mock.Anything, id, mock.Anything, mock.Anything).Return([]*domain.Session{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/activities/"+id+"/availability?from=2025-06-02&to=2025-06-08", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// --- Sessions ---

func TestHandler_SetSessionClosed_Success(t *testing.T) {
	activitySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	activitySvc.EXPECT().SetSessionClosed(mock.Anything, id, true).Return(nil)

	closed := true
	w := doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/closed", dto.CloseSessionRequest{Closed: &closed})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetSessionClosed_MissingBody(t *testing.T) {
	_, _, _, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/closed", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func bookingRequest() dto.BookRequest {
	return dto.BookRequest{
		SessionID: uuid.New().String(),
		PartySize: 2,
		Customer: dto.CustomerRequest{
			FirstName: "Alice",
			Email:     "alice@example.com",
		},
	}
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	req := bookingRequest()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		BookingNumber: "BTS-AB12CD34",
		SessionID:     req.SessionID,
		PartySize:     2,
		Status:        domain.BookingStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPending,
	}
	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BTS-AB12CD34", resp.BookingNumber)
	assert.Equal(t, string(domain.BookingStatusConfirmed), resp.Status)
}

func TestHandler_CreateBooking_InsufficientCapacity(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientCapacity)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingRequest())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_InvalidEmail(t *testing.T) {
	_, _, _, r := setupRouter(t)

	req := bookingRequest()
	req.Customer.Email = "not-an-email"

	w := doJSON(t, r, http.MethodPost, "/api/bookings", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	cancelled := &domain.Booking{ID: id, Status: domain.BookingStatusCancelled}
	bookingSvc.EXPECT().Cancel(mock.Anything, id).Return(cancelled, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusCancelled), resp.Status)
}

func TestHandler_CancelBooking_SecondCancelConflicts(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id).Return(nil, domain.ErrBookingNotCancellable)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CompleteBooking_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Complete(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/complete", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetCustomerBookings_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: uuid.New().String(), CustomerID: id},
		{ID: uuid.New().String(), CustomerID: id},
	}
	bookingSvc.EXPECT().ListByCustomer(mock.Anything, id).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/customers/"+id+"/bookings", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Webhooks ---

func TestHandler_PaymentWebhook_Succeeded(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	confirmed := &domain.Booking{
		ID:            id,
		Status:        domain.BookingStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	bookingSvc.EXPECT().HandlePaymentResult(mock.Anything, domain.PaymentResult{
		BookingID:  id,
		PaymentRef: "pi_123",
		Outcome:    domain.PaymentOutcomeSucceeded,
	}).Return(confirmed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/webhooks/payment", dto.PaymentWebhookRequest{
		BookingID:  id,
		PaymentRef: "pi_123",
		Outcome:    "succeeded",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.PaymentStatusPaid), resp.PaymentStatus)
}

func TestHandler_PaymentWebhook_UnknownOutcome(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/webhooks/payment", dto.PaymentWebhookRequest{
		BookingID: uuid.New().String(),
		Outcome:   "chargeback",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Error mapping ---

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, errors.New("connection reset"))

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
