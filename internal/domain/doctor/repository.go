package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Doctor) error

	// GetByID retrieves a doctor by primary key. Returns ErrDoctorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)

	// List returns doctors, optionally filtered by exact specialization.
	List(ctx context.Context, specialization string) ([]*Doctor, error)

	Update(ctx context.Context, id uuid.UUID, cmd *UpdateDoctorCommand) (*Doctor, error)

	// TopByRevenue aggregates completed visits per doctor, ordered by
	// revenue descending.
	TopByRevenue(ctx context.Context) ([]*Stats, error)
}

type ScheduleRepository interface {
	// GetForDay returns the schedule row for (doctor, weekday label), or
	// ErrNotWorkingThatDay when none exists.
	GetForDay(ctx context.Context, doctorID uuid.UUID, dayOfWeek string) (*Schedule, error)

	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Schedule, error)

	// Upsert creates or updates the single row for (doctor, day_of_week).
	Upsert(ctx context.Context, s *Schedule) error

	// DeleteForDoctor removes all schedule rows for a doctor.
	DeleteForDoctor(ctx context.Context, doctorID uuid.UUID) error

	// HasAny reports whether the doctor has at least one schedule row.
	HasAny(ctx context.Context, doctorID uuid.UUID) (bool, error)
}
