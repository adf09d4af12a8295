package dto

import (
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
)

type VenueResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	CreatedAt      string `json:"created_at"`
}

type ActivityResponse struct {
	ID             string               `json:"id"`
	VenueID        string               `json:"venue_id"`
	OrganizationID string               `json:"organization_id"`
	Name           string               `json:"name"`
	Capacity       int                  `json:"capacity"`
	PriceCents     int64                `json:"price_cents"`
	Schedule       domain.ScheduleRules `json:"schedule"`
}

type SessionResponse struct {
	ID                string `json:"id"`
	ActivityID        string `json:"activity_id"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	CapacityTotal     int    `json:"capacity_total"`
	CapacityRemaining int    `json:"capacity_remaining"`
	PriceCents        int64  `json:"price_cents"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	BookingNumber   string `json:"booking_number"`
	SessionID       string `json:"session_id"`
	ActivityID      string `json:"activity_id"`
	CustomerID      string `json:"customer_id"`
	PartySize       int    `json:"party_size"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	TotalPriceCents int64  `json:"total_price_cents"`
	CreatedAt       string `json:"created_at"`
}

type GenerateResponse struct {
	Generated int `json:"generated"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:             v.ID,
		OrganizationID: v.OrganizationID,
		Name:           v.Name,
		Timezone:       v.Timezone,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
}

func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		VenueID:        a.VenueID,
		OrganizationID: a.OrganizationID,
		Name:           a.Name,
		Capacity:       a.Capacity,
		PriceCents:     a.PriceCents,
		Schedule:       a.Schedule,
	}
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:                s.ID,
		ActivityID:        s.ActivityID,
		StartTime:         s.StartTime.Format(time.RFC3339),
		EndTime:           s.EndTime.Format(time.RFC3339),
		CapacityTotal:     s.CapacityTotal,
		CapacityRemaining: s.CapacityRemaining,
		PriceCents:        s.PriceCents,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		BookingNumber:   b.BookingNumber,
		SessionID:       b.SessionID,
		ActivityID:      b.ActivityID,
		CustomerID:      b.CustomerID,
		PartySize:       b.PartySize,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
