package doctor

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AvailabilityStatus is the lifecycle state of a doctor. Only Available
// doctors can be booked or appear in the slot grid.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "Available"
	StatusOnLeave   AvailabilityStatus = "OnLeave"
	StatusFired     AvailabilityStatus = "Fired"
)

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOnLeave, StatusFired:
		return true
	}
	return false
}

type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	FirstName      string             `gorm:"column:first_name;type:varchar(100);not null"`
	LastName       string             `gorm:"column:last_name;type:varchar(100);not null"`
	Specialization string             `gorm:"column:specialization;type:varchar(100);index"`
	PricePerVisit  float64            `gorm:"column:price_per_visit;not null;default:500"`
	Status         AvailabilityStatus `gorm:"column:availability_status;type:varchar(50);not null;default:'Available';index"`

	DepartmentID uuid.UUID `gorm:"column:department_id;type:uuid;not null;index"`

	Schedules []Schedule `gorm:"foreignKey:DoctorID"`
}

func (Doctor) TableName() string {
	return "clinic.doctors"
}

func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

func (d *Doctor) IsAvailable() bool {
	return d.Status == StatusAvailable
}

// Schedule is one weekly working window. At most one row exists per
// (doctor, day_of_week); times are wall-clock "HH:MM" strings.
type Schedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	DoctorID  uuid.UUID `gorm:"column:doctor_id;type:uuid;not null;uniqueIndex:uq_schedules_doctor_day"`
	DayOfWeek string    `gorm:"column:day_of_week;type:varchar(20);not null;uniqueIndex:uq_schedules_doctor_day"`
	StartTime string    `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime   string    `gorm:"column:end_time;type:varchar(5);not null"`
}

func (Schedule) TableName() string {
	return "clinic.schedules"
}

type CreateDoctorCommand struct {
	FirstName      string
	LastName       string
	Specialization string
	DepartmentID   uuid.UUID
	PricePerVisit  float64
	// Working window applied to every bookable weekday; falls back to the
	// clinic-wide default when empty or unparsable.
	ScheduleStart string
	ScheduleEnd   string
}

type UpdateDoctorCommand struct {
	FirstName      *string
	LastName       *string
	Specialization *string
	PricePerVisit  *float64
	Status         *AvailabilityStatus
}

type ScheduleItem struct {
	DayOfWeek string
	StartTime string
	EndTime   string
}

// Stats is the revenue roll-up for one doctor over completed visits.
type Stats struct {
	LastName       string
	Specialization string
	TotalVisits    int64
	TotalRevenue   float64
}
