package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/domain"
	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/domain/patient"
	"github.com/vitacare/clinicapi/internal/scheduling"
	"github.com/vitacare/clinicapi/pkg/clock"
	"github.com/vitacare/clinicapi/pkg/metrics"
)

// bookingGrace is how far into the past a requested time may lie before the
// booking is rejected, absorbing clock skew between client and server.
const bookingGrace = 5 * time.Minute

type AppointmentService struct {
	tx        domain.Transactor
	appts     appointment.Repository
	patients  patient.Repository
	doctors   doctor.Repository
	schedules doctor.ScheduleRepository
	clk       clock.Clock
	collector *metrics.Collector
	log       *zap.Logger
}

func NewAppointmentService(
	tx domain.Transactor,
	appts appointment.Repository,
	patients patient.Repository,
	doctors doctor.Repository,
	schedules doctor.ScheduleRepository,
	clk clock.Clock,
	collector *metrics.Collector,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		tx: tx, appts: appts, patients: patients, doctors: doctors,
		schedules: schedules, clk: clk, collector: collector, log: log,
	}
}

// Book validates and materializes a new appointment. The checks run in a
// fixed order and the first failure wins; checks and insert share one
// transaction so a failure leaves no partial state.
func (s *AppointmentService) Book(ctx context.Context, cmd *appointment.CreateAppointmentCommand) (*appointment.Appointment, error) {
	var created *appointment.Appointment

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if cmd.DateTime.Before(s.clk.Now().Add(-bookingGrace)) {
			return appointment.ErrScheduledInPast
		}

		p, err := s.patients.GetByID(ctx, cmd.PatientID)
		if err != nil {
			return err
		}
		if !p.IsActive {
			return patient.ErrPatientInactive
		}

		doc, err := s.doctors.GetByID(ctx, cmd.DoctorID)
		if err != nil {
			return doctor.ErrDoctorUnavailable
		}
		if !doc.IsAvailable() {
			return doctor.ErrDoctorUnavailable
		}

		sched, err := s.schedules.GetForDay(ctx, cmd.DoctorID, scheduling.WeekdayName(cmd.DateTime))
		if err != nil {
			return err
		}
		window, ok := scheduling.ParseWindow(sched.StartTime, sched.EndTime)
		if !ok || !window.Contains(scheduling.MinutesOfDay(cmd.DateTime)) {
			return doctor.ErrOutsideWorkingHours
		}

		taken, err := s.appts.ExistsAt(ctx, cmd.DoctorID, cmd.DateTime, nil)
		if err != nil {
			return fmt.Errorf("checking slot conflicts: %w", err)
		}
		if taken {
			return appointment.ErrSlotTaken
		}

		a := &appointment.Appointment{
			PatientID: cmd.PatientID,
			DoctorID:  cmd.DoctorID,
			DateTime:  cmd.DateTime,
			Symptoms:  cmd.Symptoms,
			Status:    appointment.StatusScheduled,
		}
		if err := s.appts.Create(ctx, a); err != nil {
			return fmt.Errorf("creating appointment: %w", err)
		}

		// Reload to return the nested patient.
		created, err = s.appts.GetByID(ctx, a.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.collector.AppointmentsTotal.WithLabelValues(string(appointment.StatusScheduled)).Inc()
	return created, nil
}

// Reschedule moves or annotates an existing appointment. Only the past-time
// and conflict checks are re-run; the doctor's status and working hours are
// not re-validated here.
//
// TODO: confirm with product whether reschedule should also re-check the
// doctor's schedule (it never has, and callers may depend on moving an
// appointment outside the weekly window).
func (s *AppointmentService) Reschedule(ctx context.Context, id uuid.UUID, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	var updated *appointment.Appointment

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		a, err := s.appts.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if cmd.Symptoms != nil {
			a.Symptoms = *cmd.Symptoms
		}

		if cmd.DateTime != nil {
			if cmd.DateTime.Before(s.clk.Now().Add(-bookingGrace)) {
				return appointment.ErrScheduledInPast
			}
			taken, err := s.appts.ExistsAt(ctx, a.DoctorID, *cmd.DateTime, &a.ID)
			if err != nil {
				return fmt.Errorf("checking slot conflicts: %w", err)
			}
			if taken {
				return appointment.ErrSlotTaken
			}
			a.DateTime = *cmd.DateTime
		}

		if err := s.appts.Save(ctx, a); err != nil {
			return fmt.Errorf("saving appointment: %w", err)
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel marks the appointment cancelled and appends the cancellation marker
// to its symptoms. The row is retained.
func (s *AppointmentService) Cancel(ctx context.Context, id uuid.UUID) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		a, err := s.appts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		a.Cancel(appointment.CancelledMarker)
		return s.appts.Save(ctx, a)
	})
	if err != nil {
		return err
	}

	s.collector.AppointmentsTotal.WithLabelValues(string(appointment.StatusCancelled)).Inc()
	return nil
}

// ListForDoctor returns the doctor's non-cancelled appointments in time
// order.
func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*appointment.Appointment, error) {
	return s.appts.ListForDoctor(ctx, doctorID)
}
