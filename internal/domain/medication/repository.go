package medication

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medication) error

	// GetByName does an exact, case-sensitive match on the catalog name.
	// Returns ErrMedicationNotFound when the name is unknown.
	GetByName(ctx context.Context, name string) (*Medication, error)

	List(ctx context.Context) ([]*Medication, error)
}
