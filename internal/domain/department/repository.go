package department

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create persists a new department. Returns ErrDepartmentAlreadyExists on
	// a duplicate name.
	Create(ctx context.Context, d *Department) error

	// GetByID returns ErrDepartmentNotFound if no such department exists.
	GetByID(ctx context.Context, id uuid.UUID) (*Department, error)

	List(ctx context.Context) ([]*Department, error)
}
