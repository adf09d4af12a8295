package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
)

// Slot is one generated interval, already converted to UTC.
type Slot struct {
	Start time.Time
	End   time.Time
}

type window struct {
	start int // minutes from midnight, inclusive
	end   int // exclusive
}

type block struct {
	wholeDay bool
	start    int
	end      int
}

// ExpandDay enumerates the slots for one venue-local calendar date.
// Resolution order: a custom-date override wins over weekly rules (and
// forces the day open even off-schedule), custom per-weekday hours win over
// the default window, and blocked dates remove the day or a time range
// within it. A slot is emitted only if its whole interval fits the window;
// there is no partial trailing slot.
func ExpandDay(rules domain.ScheduleRules, year int, month time.Month, day int, loc *time.Location) ([]Slot, error) {
	dateKey := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
	weekday := time.Date(year, month, day, 12, 0, 0, 0, loc).Weekday()

	w, open, err := resolveWindow(rules, dateKey, weekday)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, nil
	}

	blocks, err := blocksFor(rules, dateKey)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if b.wholeDay {
			return nil, nil
		}
	}

	interval := rules.SlotIntervalMinutes
	var slots []Slot
	for m := w.start; m+interval <= w.end; m += interval {
		if blocked(m, m+interval, blocks) {
			continue
		}
		slots = append(slots, Slot{
			Start: AtWallClock(year, month, day, m, loc),
			End:   AtWallClock(year, month, day, m+interval, loc),
		})
	}
	return slots, nil
}

func resolveWindow(rules domain.ScheduleRules, dateKey string, weekday time.Weekday) (window, bool, error) {
	for _, o := range rules.CustomDates {
		if o.Date == dateKey {
			return parseWindow(o.Start, o.End)
		}
	}

	name := strings.ToLower(weekday.String())
	operating := false
	for _, d := range rules.OperatingDays {
		if d == name {
			operating = true
			break
		}
	}
	if !operating {
		return window{}, false, nil
	}

	if rules.CustomHoursEnabled {
		if hours, ok := rules.CustomHours[name]; ok {
			return parseWindow(hours.Start, hours.End)
		}
	}
	return parseWindow(rules.StartTime, rules.EndTime)
}

func parseWindow(start, end string) (window, bool, error) {
	s, err := domain.MinuteOfDay(start)
	if err != nil {
		return window{}, false, err
	}
	e, err := domain.MinuteOfDay(end)
	if err != nil {
		return window{}, false, err
	}
	return window{start: s, end: e}, true, nil
}

func blocksFor(rules domain.ScheduleRules, dateKey string) ([]block, error) {
	var out []block
	for _, b := range rules.BlockedDates {
		if b.Date != dateKey {
			continue
		}
		if b.Start == "" && b.End == "" {
			out = append(out, block{wholeDay: true})
			continue
		}
		s, err := domain.MinuteOfDay(b.Start)
		if err != nil {
			return nil, err
		}
		e, err := domain.MinuteOfDay(b.End)
		if err != nil {
			return nil, err
		}
		out = append(out, block{start: s, end: e})
	}
	return out, nil
}

func blocked(start, end int, blocks []block) bool {
	for _, b := range blocks {
		if start < b.end && b.start < end {
			return true
		}
	}
	return false
}
