package schedule

import (
	"testing"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRules() domain.ScheduleRules {
	return domain.ScheduleRules{
		OperatingDays:       []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:           "10:00",
		EndTime:             "18:00",
		SlotIntervalMinutes: 60,
	}
}

func TestExpandDay_DefaultWindow(t *testing.T) {
	// 2025-06-16 is a Monday.
	slots, err := ExpandDay(baseRules(), 2025, time.June, 16, time.UTC)

	require.NoError(t, err)
	require.Len(t, slots, 8)
	assert.Equal(t, time.Date(2025, time.June, 16, 10, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2025, time.June, 16, 18, 0, 0, 0, time.UTC), slots[7].End)
}

func TestExpandDay_NoPartialTrailingSlot(t *testing.T) {
	rules := baseRules()
	rules.EndTime = "11:30" // room for one 60-minute slot, not two

	slots, err := ExpandDay(rules, 2025, time.June, 16, time.UTC)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2025, time.June, 16, 11, 0, 0, 0, time.UTC), slots[0].End)
}

func TestExpandDay_SlotsNeverOverlap(t *testing.T) {
	rules := baseRules()
	rules.SlotIntervalMinutes = 45

	slots, err := ExpandDay(rules, 2025, time.June, 17, time.UTC)

	require.NoError(t, err)
	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].Start.Before(slots[i-1].End),
			"slot %d overlaps slot %d", i, i-1)
	}
}

func TestExpandDay_NonOperatingWeekday(t *testing.T) {
	// 2025-06-15 is a Sunday.
	slots, err := ExpandDay(baseRules(), 2025, time.June, 15, time.UTC)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestExpandDay_CustomHoursOverrideWeekday(t *testing.T) {
	rules := baseRules()
	rules.CustomHoursEnabled = true
	rules.CustomHours = map[string]domain.DayHours{
		"monday": {Start: "14:00", End: "16:00"},
	}

	slots, err := ExpandDay(rules, 2025, time.June, 16, time.UTC)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2025, time.June, 16, 14, 0, 0, 0, time.UTC), slots[0].Start)
}

func TestExpandDay_CustomHoursIgnoredWhenDisabled(t *testing.T) {
	rules := baseRules()
	rules.CustomHoursEnabled = false
	rules.CustomHours = map[string]domain.DayHours{
		"monday": {Start: "14:00", End: "16:00"},
	}

	slots, err := ExpandDay(rules, 2025, time.June, 16, time.UTC)

	require.NoError(t, err)
	assert.Len(t, slots, 8)
}

func TestExpandDay_CustomDateForcesClosedWeekday(t *testing.T) {
	rules := baseRules()
	rules.CustomDates = []domain.DateOverride{
		{Date: "2025-06-15", Start: "12:00", End: "14:00"}, // a Sunday
	}

	slots, err := ExpandDay(rules, 2025, time.June, 15, time.UTC)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC), slots[0].Start)
}

func TestExpandDay_BlockedDateYieldsNothing(t *testing.T) {
	rules := baseRules()
	rules.OperatingDays = []string{"thursday"}
	rules.BlockedDates = []domain.DateBlock{{Date: "2025-12-25"}}

	// 2025-12-25 is a Thursday and would otherwise generate a full day.
	slots, err := ExpandDay(rules, 2025, time.December, 25, time.UTC)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestExpandDay_BlockedTimeRangeRemovesOverlappingSlots(t *testing.T) {
	rules := baseRules()
	rules.BlockedDates = []domain.DateBlock{
		{Date: "2025-06-16", Start: "12:00", End: "14:00"},
	}

	slots, err := ExpandDay(rules, 2025, time.June, 16, time.UTC)

	require.NoError(t, err)
	require.Len(t, slots, 6)
	for _, s := range slots {
		inBlock := s.Start.Before(time.Date(2025, time.June, 16, 14, 0, 0, 0, time.UTC)) &&
			s.End.After(time.Date(2025, time.June, 16, 12, 0, 0, 0, time.UTC))
		assert.False(t, inBlock, "slot %v intrudes into blocked range", s.Start)
	}
}

func TestExpandDay_BlockWinsOverCustomDate(t *testing.T) {
	rules := baseRules()
	rules.CustomDates = []domain.DateOverride{
		{Date: "2025-12-25", Start: "10:00", End: "12:00"},
	}
	rules.BlockedDates = []domain.DateBlock{{Date: "2025-12-25"}}

	slots, err := ExpandDay(rules, 2025, time.December, 25, time.UTC)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestExpandDay_DSTWallClockStable(t *testing.T) {
	ny := loadLoc(t, "America/New_York")
	rules := baseRules()
	rules.OperatingDays = []string{"saturday", "sunday"}

	before, err := ExpandDay(rules, 2025, time.March, 8, ny)
	require.NoError(t, err)
	after, err := ExpandDay(rules, 2025, time.March, 9, ny)
	require.NoError(t, err)

	require.Len(t, before, 8)
	require.Len(t, after, 8)
	assert.Equal(t, "10:00", before[0].Start.In(ny).Format("15:04"))
	assert.Equal(t, "10:00", after[0].Start.In(ny).Format("15:04"))
	// The UTC offset changed across the transition: one hour less between
	// the two first slots than a plain 24h difference.
	assert.Equal(t, 23*time.Hour, after[0].Start.Sub(before[0].Start))
}
