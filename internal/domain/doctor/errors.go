package doctor

import "errors"

var (
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrDoctorUnavailable covers both a missing doctor and one whose status
	// is anything other than Available: callers cannot book either way.
	ErrDoctorUnavailable = errors.New("doctor is not available")

	ErrNotWorkingThatDay   = errors.New("doctor has no schedule for that day of week")
	ErrOutsideWorkingHours = errors.New("time is outside the doctor's working hours")
)
