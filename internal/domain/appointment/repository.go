package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error

	// GetByID retrieves an appointment by primary key, patient preloaded.
	// Returns ErrAppointmentNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)

	// Save persists changes to an already-loaded appointment.
	Save(ctx context.Context, a *Appointment) error

	// ExistsAt reports whether the doctor has a non-cancelled appointment at
	// exactly the given time, optionally excluding one appointment id.
	ExistsAt(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error)

	// ListForDoctorBetween returns the doctor's non-cancelled appointments
	// with date_time in [from, to], ordered by time.
	ListForDoctorBetween(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*Appointment, error)

	// ListForDoctor returns all non-cancelled appointments, time-ordered.
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)

	// ListForPatient returns the patient's appointments with the given
	// status, time-ordered.
	ListForPatient(ctx context.Context, patientID uuid.UUID, status Status) ([]*Appointment, error)

	// CancelScheduledForPatient cancels every scheduled appointment of the
	// patient, appending the marker to symptoms. Used by patient deactivation.
	CancelScheduledForPatient(ctx context.Context, patientID uuid.UUID, marker string) error
}
