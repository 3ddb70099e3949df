package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/config"
	"github.com/vitacare/clinicapi/internal/domain/department"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/scheduling"
)

type doctorEnv struct {
	svc         *DoctorService
	doctors     *fakeDoctorRepo
	schedules   *fakeScheduleRepo
	departments *fakeDepartmentRepo
	department  *department.Department
}

func newDoctorEnv(t *testing.T) *doctorEnv {
	t.Helper()

	env := &doctorEnv{
		doctors:     newFakeDoctorRepo(),
		schedules:   newFakeScheduleRepo(),
		departments: newFakeDepartmentRepo(),
	}
	env.department = env.departments.add(&department.Department{Name: "Терапія", Location: "Корпус 1"})
	env.svc = NewDoctorService(
		fakeTransactor{}, env.doctors, env.schedules, env.departments,
		config.ClinicConfig{UTCOffsetHours: 2, DefaultDayStart: "09:00", DefaultDayEnd: "17:00"},
		zap.NewNop(),
	)
	return env
}

func TestHireCreatesWeeklySchedule(t *testing.T) {
	env := newDoctorEnv(t)
	ctx := context.Background()

	d, err := env.svc.Hire(ctx, &doctor.CreateDoctorCommand{
		FirstName: "Ігор", LastName: "Коваленко",
		Specialization: "Терапевт", DepartmentID: env.department.ID,
		PricePerVisit: 650, ScheduleStart: "10:00", ScheduleEnd: "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, doctor.StatusAvailable, d.Status)

	rows, err := env.schedules.ListForDoctor(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, rows, len(scheduling.BookableWeekdays))
	for _, row := range rows {
		assert.Equal(t, "10:00", row.StartTime)
		assert.Equal(t, "18:00", row.EndTime)
		assert.True(t, scheduling.IsBookableWeekday(row.DayOfWeek), row.DayOfWeek)
	}
}

func TestHireFallsBackToDefaultWindow(t *testing.T) {
	env := newDoctorEnv(t)
	ctx := context.Background()

	d, err := env.svc.Hire(ctx, &doctor.CreateDoctorCommand{
		FirstName: "Марія", LastName: "Бондаренко",
		DepartmentID: env.department.ID, ScheduleStart: "пів на десяту",
	})
	require.NoError(t, err)

	rows, err := env.schedules.ListForDoctor(ctx, d.ID)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "09:00", rows[0].StartTime)
	assert.Equal(t, "17:00", rows[0].EndTime)
}

func TestHireUnknownDepartment(t *testing.T) {
	env := newDoctorEnv(t)

	_, err := env.svc.Hire(context.Background(), &doctor.CreateDoctorCommand{
		FirstName: "Ігор", LastName: "Коваленко", DepartmentID: uuid.New(),
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestFireClearsSchedule(t *testing.T) {
	env := newDoctorEnv(t)
	ctx := context.Background()

	d, err := env.svc.Hire(ctx, &doctor.CreateDoctorCommand{
		FirstName: "Ігор", LastName: "Коваленко", DepartmentID: env.department.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Fire(ctx, d.ID))

	assert.Equal(t, doctor.StatusFired, d.Status)
	hasAny, err := env.schedules.HasAny(ctx, d.ID)
	require.NoError(t, err)
	assert.False(t, hasAny)
}

func TestReactivationRestoresDefaultSchedule(t *testing.T) {
	env := newDoctorEnv(t)
	ctx := context.Background()

	d, err := env.svc.Hire(ctx, &doctor.CreateDoctorCommand{
		FirstName: "Ігор", LastName: "Коваленко", DepartmentID: env.department.ID,
	})
	require.NoError(t, err)
	require.NoError(t, env.svc.Fire(ctx, d.ID))

	status := doctor.StatusAvailable
	updated, err := env.svc.Update(ctx, d.ID, &doctor.UpdateDoctorCommand{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, doctor.StatusAvailable, updated.Status)

	rows, err := env.schedules.ListForDoctor(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, rows, len(scheduling.BookableWeekdays))
	assert.Equal(t, "09:00", rows[0].StartTime)
}

func TestSetWeeklyScheduleSkipsBadWindows(t *testing.T) {
	env := newDoctorEnv(t)
	ctx := context.Background()

	d, err := env.svc.Hire(ctx, &doctor.CreateDoctorCommand{
		FirstName: "Ігор", LastName: "Коваленко", DepartmentID: env.department.ID,
	})
	require.NoError(t, err)

	err = env.svc.SetWeeklySchedule(ctx, d.ID, []doctor.ScheduleItem{
		{DayOfWeek: scheduling.BookableWeekdays[0], StartTime: "08:00", EndTime: "14:00"},
		{DayOfWeek: scheduling.BookableWeekdays[1], StartTime: "25:00", EndTime: "14:00"},
	})
	require.NoError(t, err)

	monday, err := env.schedules.GetForDay(ctx, d.ID, scheduling.BookableWeekdays[0])
	require.NoError(t, err)
	assert.Equal(t, "08:00", monday.StartTime)

	// The invalid item left Tuesday untouched.
	tuesday, err := env.schedules.GetForDay(ctx, d.ID, scheduling.BookableWeekdays[1])
	require.NoError(t, err)
	assert.Equal(t, "09:00", tuesday.StartTime)
}
