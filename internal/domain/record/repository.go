package record

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// GetByAppointment returns the record for the appointment, or
	// ErrRecordNotFound when the visit has never been completed.
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*MedicalRecord, error)

	Create(ctx context.Context, r *MedicalRecord) error

	// Save persists changes to an already-loaded record.
	Save(ctx context.Context, r *MedicalRecord) error
}

type PrescriptionRepository interface {
	Create(ctx context.Context, p *Prescription) error

	ListForAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*Prescription, error)
}
