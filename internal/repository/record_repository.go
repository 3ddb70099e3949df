package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitacare/clinicapi/internal/domain/record"
)

type RecordRepository struct {
	db *gorm.DB
}

var _ record.Repository = (*RecordRepository)(nil)

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*record.MedicalRecord, error) {
	var rec record.MedicalRecord
	err := conn(ctx, r.db).
		Where("appointment_id = ?", appointmentID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecordRepository) Create(ctx context.Context, rec *record.MedicalRecord) error {
	return conn(ctx, r.db).Create(rec).Error
}

func (r *RecordRepository) Save(ctx context.Context, rec *record.MedicalRecord) error {
	return conn(ctx, r.db).Save(rec).Error
}

type PrescriptionRepository struct {
	db *gorm.DB
}

var _ record.PrescriptionRepository = (*PrescriptionRepository)(nil)

func NewPrescriptionRepository(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

func (r *PrescriptionRepository) Create(ctx context.Context, p *record.Prescription) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *PrescriptionRepository) ListForAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*record.Prescription, error) {
	var out []*record.Prescription
	err := conn(ctx, r.db).
		Where("appointment_id = ?", appointmentID).
		Order("created_at asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
