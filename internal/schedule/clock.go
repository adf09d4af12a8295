// Package schedule expands an activity's declarative weekly rules into
// concrete UTC time slots. It is pure: no storage, no clocks of its own.
package schedule

import "time"

// AtWallClock resolves a naive venue-local wall clock (calendar date plus
// minute of day) to the UTC instant that renders as that wall clock in loc.
// The offset is resolved per call, so a 10:00 slot stays 10:00 local on both
// sides of a DST transition. Nonexistent wall clocks inside a spring-forward
// gap normalize forward per time.Date; ambiguous fall-back clocks resolve to
// a single instant.
func AtWallClock(year int, month time.Month, day, minuteOfDay int, loc *time.Location) time.Time {
	return time.Date(year, month, day, minuteOfDay/60, minuteOfDay%60, 0, 0, loc).UTC()
}

// CivilDate extracts the calendar date of t as observed in loc.
func CivilDate(t time.Time, loc *time.Location) (int, time.Month, int) {
	return t.In(loc).Date()
}
