package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/config"
	"github.com/vitacare/clinicapi/internal/domain"
	"github.com/vitacare/clinicapi/internal/domain/department"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/scheduling"
)

type DoctorService struct {
	tx          domain.Transactor
	doctors     doctor.Repository
	schedules   doctor.ScheduleRepository
	departments department.Repository
	clinic      config.ClinicConfig
	log         *zap.Logger
}

func NewDoctorService(
	tx domain.Transactor,
	doctors doctor.Repository,
	schedules doctor.ScheduleRepository,
	departments department.Repository,
	clinic config.ClinicConfig,
	log *zap.Logger,
) *DoctorService {
	return &DoctorService{
		tx: tx, doctors: doctors, schedules: schedules,
		departments: departments, clinic: clinic, log: log,
	}
}

// defaultWindow resolves the requested working window, falling back to the
// clinic default when a bound is missing or unparsable.
func (s *DoctorService) defaultWindow(start, end string) (string, string) {
	if _, ok := scheduling.ParseClock(start); !ok {
		start = s.clinic.DefaultDayStart
	}
	if _, ok := scheduling.ParseClock(end); !ok {
		end = s.clinic.DefaultDayEnd
	}
	return start, end
}

// Hire creates a doctor with a schedule row for every bookable weekday.
func (s *DoctorService) Hire(ctx context.Context, cmd *doctor.CreateDoctorCommand) (*doctor.Doctor, error) {
	var created *doctor.Doctor

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.departments.GetByID(ctx, cmd.DepartmentID); err != nil {
			return err
		}

		d := &doctor.Doctor{
			FirstName:      cmd.FirstName,
			LastName:       cmd.LastName,
			Specialization: cmd.Specialization,
			PricePerVisit:  cmd.PricePerVisit,
			Status:         doctor.StatusAvailable,
			DepartmentID:   cmd.DepartmentID,
		}
		if err := s.doctors.Create(ctx, d); err != nil {
			return fmt.Errorf("creating doctor: %w", err)
		}

		start, end := s.defaultWindow(cmd.ScheduleStart, cmd.ScheduleEnd)
		for _, day := range scheduling.BookableWeekdays {
			sched := &doctor.Schedule{
				DoctorID:  d.ID,
				DayOfWeek: day,
				StartTime: start,
				EndTime:   end,
			}
			if err := s.schedules.Upsert(ctx, sched); err != nil {
				return fmt.Errorf("creating schedule for %s: %w", day, err)
			}
		}

		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *DoctorService) List(ctx context.Context, specialization string) ([]*doctor.Doctor, error) {
	return s.doctors.List(ctx, specialization)
}

func (s *DoctorService) Get(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

// Update applies partial changes. Setting the status back to Available for a
// doctor with no schedule rows restores the clinic-default weekly schedule,
// so the doctor is immediately bookable again.
func (s *DoctorService) Update(ctx context.Context, id uuid.UUID, cmd *doctor.UpdateDoctorCommand) (*doctor.Doctor, error) {
	var updated *doctor.Doctor

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		d, err := s.doctors.Update(ctx, id, cmd)
		if err != nil {
			return err
		}

		if cmd.Status != nil && *cmd.Status == doctor.StatusAvailable {
			hasAny, err := s.schedules.HasAny(ctx, id)
			if err != nil {
				return fmt.Errorf("checking schedules: %w", err)
			}
			if !hasAny {
				for _, day := range scheduling.BookableWeekdays {
					sched := &doctor.Schedule{
						DoctorID:  id,
						DayOfWeek: day,
						StartTime: s.clinic.DefaultDayStart,
						EndTime:   s.clinic.DefaultDayEnd,
					}
					if err := s.schedules.Upsert(ctx, sched); err != nil {
						return fmt.Errorf("restoring schedule for %s: %w", day, err)
					}
				}
			}
		}

		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Fire marks the doctor Fired and removes their weekly schedule. The doctor
// row is kept for appointment history.
func (s *DoctorService) Fire(ctx context.Context, id uuid.UUID) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		status := doctor.StatusFired
		if _, err := s.doctors.Update(ctx, id, &doctor.UpdateDoctorCommand{Status: &status}); err != nil {
			return err
		}
		return s.schedules.DeleteForDoctor(ctx, id)
	})
}

func (s *DoctorService) WeeklySchedule(ctx context.Context, id uuid.UUID) ([]*doctor.Schedule, error) {
	if _, err := s.doctors.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.schedules.ListForDoctor(ctx, id)
}

// SetWeeklySchedule upserts one row per submitted weekday. Items with
// unparsable times are skipped, matching the tolerant behavior of the
// settings UI this backs.
func (s *DoctorService) SetWeeklySchedule(ctx context.Context, id uuid.UUID, items []doctor.ScheduleItem) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.doctors.GetByID(ctx, id); err != nil {
			return err
		}
		for _, item := range items {
			if _, ok := scheduling.ParseWindow(item.StartTime, item.EndTime); !ok {
				s.log.Debug("skipping schedule item with unparsable window",
					zap.String("doctor_id", id.String()),
					zap.String("day", item.DayOfWeek),
				)
				continue
			}
			sched := &doctor.Schedule{
				DoctorID:  id,
				DayOfWeek: item.DayOfWeek,
				StartTime: item.StartTime,
				EndTime:   item.EndTime,
			}
			if err := s.schedules.Upsert(ctx, sched); err != nil {
				return fmt.Errorf("upserting schedule for %s: %w", item.DayOfWeek, err)
			}
		}
		return nil
	})
}

func (s *DoctorService) TopByRevenue(ctx context.Context) ([]*doctor.Stats, error) {
	return s.doctors.TopByRevenue(ctx)
}
