// Package scheduling holds the pure slot arithmetic: deriving the bookable
// 20-minute grid for one doctor-day from a working window and the set of
// already-booked times. It never touches storage and never fails; callers
// translate bad input into an empty grid.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotMinutes is the fixed booking granularity.
const SlotMinutes = 20

// Slot is one 20-minute window of a doctor's working day.
type Slot struct {
	Time   string `json:"time"` // "HH:MM"
	IsFree bool   `json:"is_free"`
}

// ParseClock parses an "HH:MM" wall-clock string into minutes since
// midnight.
func ParseClock(s string) (int, bool) {
	h, m, ok := splitClock(s)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func splitClock(s string) (h, m int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesOfDay returns the time-of-day component of t in minutes.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Window is a doctor's [Start, End) working range for one day, in minutes
// since midnight.
type Window struct {
	Start int
	End   int
}

// ParseWindow builds a Window from schedule "HH:MM" strings.
func ParseWindow(start, end string) (Window, bool) {
	s, ok := ParseClock(start)
	if !ok {
		return Window{}, false
	}
	e, ok := ParseClock(end)
	if !ok {
		return Window{}, false
	}
	return Window{Start: s, End: e}, true
}

// Contains reports whether the time-of-day lies within [Start, End).
func (w Window) Contains(minutes int) bool {
	return minutes >= w.Start && minutes < w.End
}

// BuildSlots emits the slot grid for one day. A slot exists when its end
// (start + 20 min) still fits inside the window, so a trailing partial
// segment is dropped. A slot is busy when its start time is in the busy set
// or, on the current day, already in the past.
//
// busy holds the minutes-of-day of existing non-cancelled bookings;
// nowMinutes is only consulted when today is true.
func BuildSlots(w Window, busy map[int]bool, today bool, nowMinutes int) []Slot {
	var slots []Slot
	for cur := w.Start; cur+SlotMinutes <= w.End; cur += SlotMinutes {
		free := !busy[cur]
		if today && cur < nowMinutes {
			free = false
		}
		slots = append(slots, Slot{Time: FormatClock(cur), IsFree: free})
	}
	return slots
}
