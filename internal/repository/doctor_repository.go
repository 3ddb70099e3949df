package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
)

type DoctorRepository struct {
	db *gorm.DB
}

var _ doctor.Repository = (*DoctorRepository)(nil)

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) Create(ctx context.Context, d *doctor.Doctor) error {
	return conn(ctx, r.db).Create(d).Error
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	var d doctor.Doctor
	err := conn(ctx, r.db).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, doctor.ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DoctorRepository) List(ctx context.Context, specialization string) ([]*doctor.Doctor, error) {
	q := conn(ctx, r.db).Order("last_name asc")
	if specialization != "" {
		q = q.Where("specialization = ?", specialization)
	}
	var out []*doctor.Doctor
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DoctorRepository) Update(ctx context.Context, id uuid.UUID, cmd *doctor.UpdateDoctorCommand) (*doctor.Doctor, error) {
	d, err := r.GetByID(ctx, id)
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
	if cmd.Specialization != nil {
		updates["specialization"] = *cmd.Specialization
	}
	if cmd.PricePerVisit != nil {
		updates["price_per_visit"] = *cmd.PricePerVisit
	}
	if cmd.Status != nil {
		updates["availability_status"] = *cmd.Status
	}
	if len(updates) == 0 {
		return d, nil
	}

	if err := conn(ctx, r.db).Model(d).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *DoctorRepository) TopByRevenue(ctx context.Context) ([]*doctor.Stats, error) {
	var out []*doctor.Stats
	err := conn(ctx, r.db).
		Model(&doctor.Doctor{}).
		Select("last_name, specialization, COUNT(a.id) AS total_visits, SUM(price_per_visit) AS total_revenue").
		Joins("JOIN clinic.appointments a ON a.doctor_id = clinic.doctors.id").
		Where("a.status = ?", appointment.StatusCompleted).
		Group("clinic.doctors.id").
		Order("total_revenue DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type ScheduleRepository struct {
	db *gorm.DB
}

var _ doctor.ScheduleRepository = (*ScheduleRepository)(nil)

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) GetForDay(ctx context.Context, doctorID uuid.UUID, dayOfWeek string) (*doctor.Schedule, error) {
	var s doctor.Schedule
	err := conn(ctx, r.db).
		Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, doctor.ErrNotWorkingThatDay
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*doctor.Schedule, error) {
	var out []*doctor.Schedule
	err := conn(ctx, r.db).
		Where("doctor_id = ?", doctorID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ScheduleRepository) Upsert(ctx context.Context, s *doctor.Schedule) error {
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "updated_at"}),
		}).
		Create(s).Error
}

func (r *ScheduleRepository) DeleteForDoctor(ctx context.Context, doctorID uuid.UUID) error {
	return conn(ctx, r.db).
		Where("doctor_id = ?", doctorID).
		Delete(&doctor.Schedule{}).Error
}

func (r *ScheduleRepository) HasAny(ctx context.Context, doctorID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&doctor.Schedule{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
