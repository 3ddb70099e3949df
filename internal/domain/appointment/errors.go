package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrScheduledInPast     = errors.New("cannot schedule appointment in the past")

	// ErrSlotTaken means the doctor already has a non-cancelled appointment
	// at the exact same date and time.
	ErrSlotTaken = errors.New("appointment time slot is already booked")
)
