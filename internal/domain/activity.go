package domain

import (
	"fmt"
	"time"
)

type Venue struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Timezone       string    `json:"timezone"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateVenueInput struct {
	OrganizationID string
	Name           string
	Timezone       string
}

// Activity is a bookable experience (escape room, axe-throwing lane, ...)
// offered by a venue. Capacity and price are snapshotted into every session
// at generation time.
type Activity struct {
	ID             string        `json:"id"`
	VenueID        string        `json:"venue_id"`
	OrganizationID string        `json:"organization_id"`
	Name           string        `json:"name"`
	Capacity       int           `json:"capacity"`
	PriceCents     int64         `json:"price_cents"`
	Schedule       ScheduleRules `json:"schedule"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type CreateActivityInput struct {
	VenueID        string
	OrganizationID string
	Name           string
	Capacity       int
	PriceCents     int64
	Schedule       ScheduleRules
}

// ActivityUpdate enumerates every field a mutation may change. Nil means
// "leave untouched". Price and capacity changes affect future generation
// only; already generated sessions keep their snapshots. A schedule change
// triggers regeneration of the forward window.
type ActivityUpdate struct {
	Name       *string
	Capacity   *int
	PriceCents *int64
	Schedule   *ScheduleRules
}

func (u ActivityUpdate) Empty() bool {
	return u.Name == nil && u.Capacity == nil && u.PriceCents == nil && u.Schedule == nil
}

func (u ActivityUpdate) Validate() error {
	if u.Capacity != nil && *u.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	if u.PriceCents != nil && *u.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if u.Schedule != nil {
		if err := u.Schedule.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DayHours bounds a single day's operating window, wall-clock "HH:MM".
type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DateOverride replaces the weekly window for one calendar date
// ("2006-01-02"). It forces generation even on a non-operating weekday.
type DateOverride struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DateBlock excludes a date (or a time range within it) from generation.
// Empty Start/End blocks the whole day.
type DateBlock struct {
	Date  string `json:"date"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// ScheduleRules is the declarative weekly template an activity's sessions
// are generated from. All wall-clock strings are interpreted in the owning
// venue's timezone.
type ScheduleRules struct {
	OperatingDays       []string            `json:"operating_days"`
	StartTime           string              `json:"start_time"`
	EndTime             string              `json:"end_time"`
	SlotIntervalMinutes int                 `json:"slot_interval_minutes"`
	AdvanceBookingDays  int                 `json:"advance_booking_days"`
	CustomHoursEnabled  bool                `json:"custom_hours_enabled"`
	CustomHours         map[string]DayHours `json:"custom_hours,omitempty"`
	CustomDates         []DateOverride      `json:"custom_dates,omitempty"`
	BlockedDates        []DateBlock         `json:"blocked_dates,omitempty"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[name]
	return d, ok
}

// MinuteOfDay parses a wall-clock "HH:MM" string into minutes from midnight.
func MinuteOfDay(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: invalid clock value %q", ErrValidation, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: clock value %q out of range", ErrValidation, s)
	}
	return h*60 + m, nil
}

const dateLayout = "2006-01-02"

// DateLayout is the calendar-date format used by custom and blocked dates.
const DateLayout = dateLayout

func validWindow(start, end string) error {
	s, err := MinuteOfDay(start)
	if err != nil {
		return err
	}
	e, err := MinuteOfDay(end)
	if err != nil {
		return err
	}
	if s >= e {
		return fmt.Errorf("%w: window start %q must be before end %q", ErrValidation, start, end)
	}
	return nil
}

func (r ScheduleRules) Validate() error {
	if r.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: slot interval must be positive", ErrValidation)
	}
	if r.AdvanceBookingDays < 0 {
		return fmt.Errorf("%w: advance booking days must not be negative", ErrValidation)
	}
	if err := validWindow(r.StartTime, r.EndTime); err != nil {
		return err
	}
	if len(r.OperatingDays) == 0 && len(r.CustomDates) == 0 {
		return fmt.Errorf("%w: at least one operating day or custom date is required", ErrValidation)
	}
	for _, day := range r.OperatingDays {
		if _, ok := ParseWeekday(day); !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrValidation, day)
		}
	}
	if r.CustomHoursEnabled {
		for day, hours := range r.CustomHours {
			if _, ok := ParseWeekday(day); !ok {
				return fmt.Errorf("%w: unknown weekday %q in custom hours", ErrValidation, day)
			}
			if err := validWindow(hours.Start, hours.End); err != nil {
				return err
			}
		}
	}
	for _, o := range r.CustomDates {
		if _, err := time.Parse(dateLayout, o.Date); err != nil {
			return fmt.Errorf("%w: invalid custom date %q", ErrValidation, o.Date)
		}
		if err := validWindow(o.Start, o.End); err != nil {
			return err
		}
	}
	for _, b := range r.BlockedDates {
		if _, err := time.Parse(dateLayout, b.Date); err != nil {
			return fmt.Errorf("%w: invalid blocked date %q", ErrValidation, b.Date)
		}
		if b.Start != "" || b.End != "" {
			if err := validWindow(b.Start, b.End); err != nil {
				return err
			}
		}
	}
	return nil
}
