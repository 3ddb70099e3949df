package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"09:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"9:5", 545, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:00", 0, false},
		{"noon", 0, false},
		{"1200", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.minutes, got, "input %q", tt.in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "16:40", FormatClock(1000))
}

func TestMinutesOfDay(t *testing.T) {
	at := time.Date(2026, 3, 2, 14, 25, 59, 0, time.UTC)
	assert.Equal(t, 14*60+25, MinutesOfDay(at))
}

func TestWindowContains(t *testing.T) {
	w, ok := ParseWindow("09:00", "17:00")
	require.True(t, ok)

	assert.True(t, w.Contains(540), "start is inclusive")
	assert.True(t, w.Contains(1019))
	assert.False(t, w.Contains(1020), "end is exclusive")
	assert.False(t, w.Contains(539))
}

func TestParseWindowRejectsBadBounds(t *testing.T) {
	_, ok := ParseWindow("ранок", "17:00")
	assert.False(t, ok)
	_, ok = ParseWindow("09:00", "вечір")
	assert.False(t, ok)
}

func TestBuildSlotsStandardDay(t *testing.T) {
	w := Window{Start: 540, End: 1020} // 09:00 - 17:00

	slots := BuildSlots(w, nil, false, 0)
	require.Len(t, slots, 24)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "16:40", slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.True(t, s.IsFree)
	}
}

func TestBuildSlotsDropsTrailingPartialSegment(t *testing.T) {
	w := Window{Start: 540, End: 630} // 09:00 - 10:30

	slots := BuildSlots(w, nil, false, 0)
	require.Len(t, slots, 4)
	assert.Equal(t, "10:00", slots[len(slots)-1].Time)
}

func TestBuildSlotsEmptyForTinyWindow(t *testing.T) {
	assert.Empty(t, BuildSlots(Window{Start: 540, End: 550}, nil, false, 0))
	assert.Empty(t, BuildSlots(Window{Start: 540, End: 540}, nil, false, 0))
}

func TestBuildSlotsMarksBusyAndElapsed(t *testing.T) {
	w := Window{Start: 540, End: 660} // 09:00 - 11:00
	busy := map[int]bool{600: true}   // 10:00 booked

	slots := BuildSlots(w, busy, true, 565) // now 09:25

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.IsFree
	}
	assert.False(t, byTime["09:00"], "already elapsed")
	assert.False(t, byTime["09:20"], "already elapsed")
	assert.True(t, byTime["09:40"])
	assert.False(t, byTime["10:00"], "booked")
	assert.True(t, byTime["10:20"])
}

func TestBuildSlotsIgnoresNowOnFutureDays(t *testing.T) {
	w := Window{Start: 540, End: 660}

	slots := BuildSlots(w, nil, false, 565)
	for _, s := range slots {
		assert.True(t, s.IsFree)
	}
}
