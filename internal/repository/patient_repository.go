package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitacare/clinicapi/internal/domain/patient"
)

type PatientRepository struct {
	db *gorm.DB
}

var _ patient.Repository = (*PatientRepository)(nil)

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	err := conn(ctx, r.db).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return patient.ErrPatientAlreadyExists
	}
	return err
}

func (r *PatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	var p patient.Patient
	err := conn(ctx, r.db).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, patient.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) List(ctx context.Context, search string) ([]*patient.Patient, error) {
	q := conn(ctx, r.db).
		Where("is_active = ?", true).
		Order("created_at asc")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR phone_number ILIKE ? OR CAST(date_of_birth AS TEXT) ILIKE ?",
			like, like, like, like,
		)
	}

	var out []*patient.Patient
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PatientRepository) Update(ctx context.Context, id uuid.UUID, cmd *patient.UpdatePatientCommand) (*patient.Patient, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if cmd.FirstName != nil {
		updates["first_name"] = *cmd.FirstName
	}
	if cmd.LastName != nil {
		updates["last_name"] = *cmd.LastName
	}
	if cmd.PhoneNumber != nil {
		updates["phone_number"] = *cmd.PhoneNumber
	}
	if len(updates) == 0 {
		return p, nil
	}

	err = conn(ctx, r.db).Model(p).Updates(updates).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, patient.ErrPatientAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PatientRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := conn(ctx, r.db).
		Model(&patient.Patient{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return patient.ErrPatientNotFound
	}
	return nil
}
