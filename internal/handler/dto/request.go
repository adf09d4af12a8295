package dto

import "github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"

type DayHours struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type DateOverride struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type DateBlock struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleRules struct {
	OperatingDays       []string            `json:"operating_days"`
	StartTime           string              `json:"start_time" binding:"required"`
	EndTime             string              `json:"end_time" binding:"required"`
	SlotIntervalMinutes int                 `json:"slot_interval_minutes" binding:"required,gt=0"`
	AdvanceBookingDays  int                 `json:"advance_booking_days" binding:"gte=0"`
	CustomHoursEnabled  bool                `json:"custom_hours_enabled"`
	CustomHours         map[string]DayHours `json:"custom_hours"`
	CustomDates         []DateOverride      `json:"custom_dates"`
	BlockedDates        []DateBlock         `json:"blocked_dates"`
}

func (r ScheduleRules) ToDomain() domain.ScheduleRules {
	rules := domain.ScheduleRules{
		OperatingDays:       r.OperatingDays,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		AdvanceBookingDays:  r.AdvanceBookingDays,
		CustomHoursEnabled:  r.CustomHoursEnabled,
	}
	if len(r.CustomHours) > 0 {
		rules.CustomHours = make(map[string]domain.DayHours, len(r.CustomHours))
		for day, hours := range r.CustomHours {
			rules.CustomHours[day] = domain.DayHours{Start: hours.Start, End: hours.End}
		}
	}
	for _, o := range r.CustomDates {
		rules.CustomDates = append(rules.CustomDates, domain.DateOverride{Date: o.Date, Start: o.Start, End: o.End})
	}
	for _, b := range r.BlockedDates {
		rules.BlockedDates = append(rules.BlockedDates, domain.DateBlock{Date: b.Date, Start: b.Start, End: b.End})
	}
	return rules
}

type CreateVenueRequest struct {
	OrganizationID string `json:"organization_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Timezone       string `json:"timezone" binding:"required"`
}

type CreateActivityRequest struct {
	VenueID        string        `json:"venue_id" binding:"required,uuid"`
	OrganizationID string        `json:"organization_id" binding:"required"`
	Name           string        `json:"name" binding:"required"`
	Capacity       int           `json:"capacity" binding:"required,gt=0"`
	PriceCents     int64         `json:"price_cents" binding:"gte=0"`
	Schedule       ScheduleRules `json:"schedule" binding:"required"`
}

type UpdateActivityRequest struct {
	Name       *string        `json:"name"`
	Capacity   *int           `json:"capacity"`
	PriceCents *int64         `json:"price_cents"`
	Schedule   *ScheduleRules `json:"schedule"`
}

func (r UpdateActivityRequest) ToDomain() domain.ActivityUpdate {
	upd := domain.ActivityUpdate{
		Name:       r.Name,
		Capacity:   r.Capacity,
		PriceCents: r.PriceCents,
	}
	if r.Schedule != nil {
		rules := r.Schedule.ToDomain()
		upd.Schedule = &rules
	}
	return upd
}

type GenerateRequest struct {
	HorizonDays int `json:"horizon_days" binding:"gte=0"`
}

type CustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

type BookRequest struct {
	SessionID        string          `json:"session_id" binding:"required,uuid"`
	PartySize        int             `json:"party_size" binding:"required,gt=0"`
	Customer         CustomerRequest `json:"customer" binding:"required"`
	PaymentIntentRef string          `json:"payment_intent_ref"`
}

type CloseSessionRequest struct {
	Closed *bool `json:"closed" binding:"required"`
}

type PaymentWebhookRequest struct {
	BookingID  string `json:"booking_id" binding:"required,uuid"`
	PaymentRef string `json:"payment_ref"`
	Outcome    string `json:"outcome" binding:"required,oneof=succeeded failed refunded"`
}
