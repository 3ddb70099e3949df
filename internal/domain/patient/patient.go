package patient

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	FirstName   string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName    string    `gorm:"column:last_name;type:varchar(100);not null"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;not null"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(20);uniqueIndex"`

	// Soft-delete marker. Deactivated patients keep their history but cannot
	// book; deactivation cancels their pending appointments.
	IsActive bool `gorm:"column:is_active;default:true;index"`
}

func (Patient) TableName() string {
	return "clinic.patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type CreatePatientCommand struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	PhoneNumber string
}

type UpdatePatientCommand struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// VisitHistoryEntry is one completed visit in a patient's history.
type VisitHistoryEntry struct {
	Date          time.Time `json:"date"`
	Diagnosis     string    `json:"diagnosis"`
	TreatmentPlan string    `json:"treatment_plan"`
	DoctorName    string    `json:"doctor_name"`
}
