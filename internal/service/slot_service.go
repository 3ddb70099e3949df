package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/scheduling"
	"github.com/vitacare/clinicapi/pkg/clock"
	"github.com/vitacare/clinicapi/pkg/metrics"
)

// SlotService computes the bookable slot grid for a doctor-day.
//
// Deliberately permissive: anything that makes the day unbookable (an
// unparsable or past date, an unknown or non-Available doctor, no schedule
// for that weekday) yields an empty grid rather than an error. Booking
// itself re-validates strictly.
type SlotService struct {
	doctors   doctor.Repository
	schedules doctor.ScheduleRepository
	appts     appointment.Repository
	clk       clock.Clock
	collector *metrics.Collector
	log       *zap.Logger
}

func NewSlotService(
	doctors doctor.Repository,
	schedules doctor.ScheduleRepository,
	appts appointment.Repository,
	clk clock.Clock,
	collector *metrics.Collector,
	log *zap.Logger,
) *SlotService {
	return &SlotService{doctors: doctors, schedules: schedules, appts: appts, clk: clk, collector: collector, log: log}
}

// GetSlots returns the ordered 20-minute grid for the doctor on dateStr
// ("YYYY-MM-DD"), each slot tagged free or busy.
func (s *SlotService) GetSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) []scheduling.Slot {
	s.collector.SlotQueriesTotal.Inc()

	targetDate, err := time.ParseInLocation("2006-01-02", dateStr, s.clk.Location())
	if err != nil {
		return nil
	}

	now := s.clk.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.clk.Location())
	if targetDate.Before(today) {
		return nil
	}

	doc, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil || !doc.IsAvailable() {
		return nil
	}

	sched, err := s.schedules.GetForDay(ctx, doctorID, scheduling.WeekdayName(targetDate))
	if err != nil {
		return nil
	}

	window, ok := scheduling.ParseWindow(sched.StartTime, sched.EndTime)
	if !ok {
		s.log.Warn("schedule row has unparsable working window",
			zap.String("doctor_id", doctorID.String()),
			zap.String("day", sched.DayOfWeek),
		)
		return nil
	}

	dayStart := targetDate
	dayEnd := targetDate.Add(24*time.Hour - time.Nanosecond)
	booked, err := s.appts.ListForDoctorBetween(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		s.log.Warn("listing appointments for slot grid", zap.Error(err))
		return nil
	}

	busy := make(map[int]bool, len(booked))
	for _, a := range booked {
		busy[scheduling.MinutesOfDay(a.DateTime.In(s.clk.Location()))] = true
	}

	isToday := targetDate.Equal(today)
	return scheduling.BuildSlots(window, busy, isToday, scheduling.MinutesOfDay(now))
}
