package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vitacare/clinicapi/internal/domain/medication"
)

type MedicationRepository struct {
	db *gorm.DB
}

var _ medication.Repository = (*MedicationRepository)(nil)

func NewMedicationRepository(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) Create(ctx context.Context, m *medication.Medication) error {
	return conn(ctx, r.db).Create(m).Error
}

func (r *MedicationRepository) GetByName(ctx context.Context, name string) (*medication.Medication, error) {
	var m medication.Medication
	err := conn(ctx, r.db).
		Where("medication_name = ?", name).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, medication.ErrMedicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MedicationRepository) List(ctx context.Context) ([]*medication.Medication, error) {
	var out []*medication.Medication
	if err := conn(ctx, r.db).Order("medication_name asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
