// Package clock provides the clinic's notion of "now". The whole system runs
// on a single fixed UTC offset; appointment timestamps carry no zone of their
// own and are always interpreted against this clock.
package clock

import "time"

type Clock interface {
	// Now returns the current time in the clinic's fixed-offset location.
	Now() time.Time
	// Location returns the clinic's fixed-offset location, used to interpret
	// zoneless timestamps received over the API.
	Location() *time.Location
}

type fixedOffsetClock struct {
	loc *time.Location
}

// NewFixedOffset builds a Clock pinned to UTC+offsetHours.
func NewFixedOffset(offsetHours int) Clock {
	return &fixedOffsetClock{
		loc: time.FixedZone("CLINIC", offsetHours*3600),
	}
}

func (c *fixedOffsetClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *fixedOffsetClock) Location() *time.Location {
	return c.loc
}
