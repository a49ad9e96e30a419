package cultivation

import (
	"fmt"
	"time"
)

// calendarEpoch anchors the in-game calendar: day zero of every world is
// February 2nd, 993.
var calendarEpoch = time.Date(993, time.February, 2, 0, 0, 0, 0, time.UTC)

// Calendar maps wall time onto the in-game calendar. One tick advances the
// calendar by one day, so a world started at Start has lived
// (now-Start)/SecondsPerTick in-game days.
type Calendar struct {
	Start time.Time
}

func (c Calendar) DaysSinceStart(now time.Time) int64 {
	elapsed := now.Sub(c.Start)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / (SecondsPerTick * time.Second))
}

func (c Calendar) DateAt(now time.Time) time.Time {
	return calendarEpoch.AddDate(0, 0, int(c.DaysSinceStart(now)))
}

// FormatDate renders the in-game date as "February 2nd, 993".
func (c Calendar) FormatDate(now time.Time) string {
	d := c.DateAt(now)
	return fmt.Sprintf("%s %s, %d", d.Month(), ordinal(d.Day()), d.Year())
}

func ordinal(day int) string {
	if day%100 >= 10 && day%100 <= 20 {
		return fmt.Sprintf("%dth", day)
	}
	switch day % 10 {
	case 1:
		return fmt.Sprintf("%dst", day)
	case 2:
		return fmt.Sprintf("%dnd", day)
	case 3:
		return fmt.Sprintf("%drd", day)
	default:
		return fmt.Sprintf("%dth", day)
	}
}
