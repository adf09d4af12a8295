package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestAtWallClock_BeforeSpringForward(t *testing.T) {
	ny := loadLoc(t, "America/New_York")

	// 2025-03-08 is the day before the US spring-forward transition (EST, UTC-5).
	got := AtWallClock(2025, time.March, 8, 10*60, ny)

	assert.Equal(t, time.Date(2025, time.March, 8, 15, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "10:00", got.In(ny).Format("15:04"))
}

func TestAtWallClock_AfterSpringForward(t *testing.T) {
	ny := loadLoc(t, "America/New_York")

	// 2025-03-09 02:00 EST jumps to 03:00 EDT (UTC-4). Same wall clock,
	// different UTC instant than the day before.
	got := AtWallClock(2025, time.March, 9, 10*60, ny)

	assert.Equal(t, time.Date(2025, time.March, 9, 14, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "10:00", got.In(ny).Format("15:04"))
}

func TestAtWallClock_AcrossFallBack(t *testing.T) {
	ny := loadLoc(t, "America/New_York")

	before := AtWallClock(2025, time.November, 1, 10*60, ny) // EDT
	after := AtWallClock(2025, time.November, 2, 10*60, ny)  // EST

	assert.Equal(t, time.Date(2025, time.November, 1, 14, 0, 0, 0, time.UTC), before)
	assert.Equal(t, time.Date(2025, time.November, 2, 15, 0, 0, 0, time.UTC), after)
	assert.Equal(t, "10:00", before.In(ny).Format("15:04"))
	assert.Equal(t, "10:00", after.In(ny).Format("15:04"))
}

func TestAtWallClock_NonexistentTimeNormalizesForward(t *testing.T) {
	ny := loadLoc(t, "America/New_York")

	// 02:30 does not exist on 2025-03-09; time.Date pushes it into the gap's
	// far side so the instant is still well defined.
	got := AtWallClock(2025, time.March, 9, 2*60+30, ny)

	assert.Equal(t, "03:30", got.In(ny).Format("15:04"))
}

func TestAtWallClock_FixedZoneUnaffected(t *testing.T) {
	utc := time.UTC

	got := AtWallClock(2025, time.June, 15, 9*60+15, utc)

	assert.Equal(t, time.Date(2025, time.June, 15, 9, 15, 0, 0, time.UTC), got)
}

func TestCivilDate_UsesVenueZone(t *testing.T) {
	ny := loadLoc(t, "America/New_York")

	// 02:00 UTC is still the previous evening in New York.
	y, m, d := CivilDate(time.Date(2025, time.July, 10, 2, 0, 0, 0, time.UTC), ny)

	assert.Equal(t, 2025, y)
	assert.Equal(t, time.July, m)
	assert.Equal(t, 9, d)
}
