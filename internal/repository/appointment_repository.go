package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitacare/clinicapi/internal/domain/appointment"
)

type AppointmentRepository struct {
	db *gorm.DB
}

var _ appointment.Repository = (*AppointmentRepository)(nil)

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	err := conn(ctx, r.db).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Partial unique index on (doctor_id, date_time) for non-cancelled
		// rows: the store-level guard behind the service-level check.
		return appointment.ErrSlotTaken
	}
	return err
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var a appointment.Appointment
	err := conn(ctx, r.db).
		Preload("Patient").
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appointment.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Save(ctx context.Context, a *appointment.Appointment) error {
	return conn(ctx, r.db).Save(a).Error
}

func (r *AppointmentRepository) ExistsAt(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error) {
	q := conn(ctx, r.db).
		Model(&appointment.Appointment{}).
		Where("doctor_id = ? AND date_time = ? AND status <> ?", doctorID, at, appointment.StatusCancelled)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentRepository) ListForDoctorBetween(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	err := conn(ctx, r.db).
		Where("doctor_id = ? AND date_time BETWEEN ? AND ? AND status <> ?",
			doctorID, from, to, appointment.StatusCancelled).
		Order("date_time asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AppointmentRepository) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	err := conn(ctx, r.db).
		Preload("Patient").
		Where("doctor_id = ? AND status <> ?", doctorID, appointment.StatusCancelled).
		Order("date_time asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AppointmentRepository) ListForPatient(ctx context.Context, patientID uuid.UUID, status appointment.Status) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	err := conn(ctx, r.db).
		Where("patient_id = ? AND status = ?", patientID, status).
		Order("date_time asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AppointmentRepository) CancelScheduledForPatient(ctx context.Context, patientID uuid.UUID, marker string) error {
	return conn(ctx, r.db).
		Model(&appointment.Appointment{}).
		Where("patient_id = ? AND status = ?", patientID, appointment.StatusScheduled).
		Updates(map[string]any{
			"status":   appointment.StatusCancelled,
			"symptoms": gorm.Expr("COALESCE(symptoms, '') || ?", marker),
		}).Error
}
