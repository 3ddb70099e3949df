package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitacare/clinicapi/internal/domain/patient"
)

// State transitions:
//
//	scheduled → completed (visit happened, diagnosis recorded)
//	scheduled → cancelled (marker appended to symptoms; row never deleted)
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// CancelledMarker is appended to the symptoms field when a booking is
// cancelled by the patient or staff.
const CancelledMarker = " [СКАСОВАНО]"

// DeletedMarker is appended when the cancellation is a side effect of
// deactivating the patient.
const DeletedMarker = " [DELETED]"

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PatientID uuid.UUID `gorm:"column:patient_id;type:uuid;not null;index"`
	DoctorID  uuid.UUID `gorm:"column:doctor_id;type:uuid;not null;index"`

	// Wall-clock visit time in the clinic's fixed offset; no zone is stored.
	DateTime time.Time `gorm:"column:date_time;not null;index"`

	Status    Status `gorm:"column:status;type:varchar(20);not null;default:'scheduled';index"`
	Symptoms  string `gorm:"column:symptoms;type:text"`
	Diagnosis string `gorm:"column:diagnosis;type:text"`

	Patient *patient.Patient `gorm:"foreignKey:PatientID"`
}

func (Appointment) TableName() string {
	return "clinic.appointments"
}

func (a *Appointment) Cancel(marker string) {
	a.Status = StatusCancelled
	a.Symptoms += marker
}

type CreateAppointmentCommand struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	DateTime  time.Time
	Symptoms  string
}

type UpdateAppointmentCommand struct {
	DateTime *time.Time
	Symptoms *string
}
