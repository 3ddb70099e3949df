package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create persists a new patient. Returns ErrPatientAlreadyExists on a
	// duplicate phone number.
	Create(ctx context.Context, p *Patient) error

	// GetByID retrieves a patient by primary key. Returns ErrPatientNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)

	// List returns active patients, optionally filtered by a substring match
	// on name, phone number, or date of birth.
	List(ctx context.Context, search string) ([]*Patient, error)

	Update(ctx context.Context, id uuid.UUID, cmd *UpdatePatientCommand) (*Patient, error)

	// Deactivate flips the soft-delete marker; the record is retained.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
