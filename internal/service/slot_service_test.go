package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/scheduling"
)

type slotEnv struct {
	svc       *SlotService
	appts     *fakeAppointmentRepo
	doctors   *fakeDoctorRepo
	schedules *fakeScheduleRepo
	doctor    *doctor.Doctor
}

func newSlotEnv(t *testing.T, now time.Time) *slotEnv {
	t.Helper()

	env := &slotEnv{
		appts:     newFakeAppointmentRepo(),
		doctors:   newFakeDoctorRepo(),
		schedules: newFakeScheduleRepo(),
	}
	env.doctor = env.doctors.add(&doctor.Doctor{
		FirstName: "Ігор", LastName: "Коваленко", Status: doctor.StatusAvailable,
	})
	for _, day := range scheduling.BookableWeekdays {
		env.schedules.set(env.doctor.ID, day, "09:00", "17:00")
	}
	env.svc = NewSlotService(
		env.doctors, env.schedules, env.appts, fakeClock{now: now}, testCollector, zap.NewNop(),
	)
	return env
}

func TestSlotsFullFutureDay(t *testing.T) {
	env := newSlotEnv(t, testNow)

	// The following Monday.
	slots := env.svc.GetSlots(context.Background(), env.doctor.ID, "2026-03-09")
	require.Len(t, slots, 24)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "16:40", slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.True(t, s.IsFree, "slot %s", s.Time)
	}
}

func TestSlotsMarkBookedTimesBusy(t *testing.T) {
	env := newSlotEnv(t, testNow)
	env.appts.add(&appointment.Appointment{
		DoctorID: env.doctor.ID, PatientID: uuid.New(),
		DateTime: time.Date(2026, 3, 9, 10, 20, 0, 0, kyiv),
		Status:   appointment.StatusScheduled,
	})
	// Cancelled bookings free their slot again.
	env.appts.add(&appointment.Appointment{
		DoctorID: env.doctor.ID, PatientID: uuid.New(),
		DateTime: time.Date(2026, 3, 9, 11, 0, 0, 0, kyiv),
		Status:   appointment.StatusCancelled,
	})

	slots := env.svc.GetSlots(context.Background(), env.doctor.ID, "2026-03-09")
	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.IsFree
	}
	assert.False(t, byTime["10:20"])
	assert.True(t, byTime["11:00"])
	assert.True(t, byTime["10:00"])
}

func TestSlotsTodayHidesElapsedTimes(t *testing.T) {
	// Monday 12:10 clinic time.
	now := time.Date(2026, 3, 2, 12, 10, 0, 0, kyiv)
	env := newSlotEnv(t, now)

	slots := env.svc.GetSlots(context.Background(), env.doctor.ID, "2026-03-02")
	require.Len(t, slots, 24)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.IsFree
	}
	assert.False(t, byTime["09:00"])
	assert.False(t, byTime["12:00"])
	assert.True(t, byTime["12:20"])
}

func TestSlotsEmptyCases(t *testing.T) {
	env := newSlotEnv(t, testNow)
	ctx := context.Background()

	assert.Empty(t, env.svc.GetSlots(ctx, env.doctor.ID, "2026-02-23"), "past date")
	assert.Empty(t, env.svc.GetSlots(ctx, env.doctor.ID, "09-03-2026"), "unparsable date")
	assert.Empty(t, env.svc.GetSlots(ctx, env.doctor.ID, "2026-03-08"), "no schedule on Sunday")
	assert.Empty(t, env.svc.GetSlots(ctx, uuid.New(), "2026-03-09"), "unknown doctor")

	env.doctor.Status = doctor.StatusOnLeave
	assert.Empty(t, env.svc.GetSlots(ctx, env.doctor.ID, "2026-03-09"), "doctor on leave")
}

func TestSlotsDropTrailingPartialSegment(t *testing.T) {
	env := newSlotEnv(t, testNow)
	env.schedules.set(env.doctor.ID, scheduling.BookableWeekdays[0], "09:00", "10:30")

	slots := env.svc.GetSlots(context.Background(), env.doctor.ID, "2026-03-09")
	require.Len(t, slots, 4)
	assert.Equal(t, "10:00", slots[len(slots)-1].Time)
}
