package record

import (
	"time"

	"github.com/google/uuid"
)

// Placeholder clinical fields for records created by visit completion.
// No intake process collects these yet.
const (
	PlaceholderAllergies  = "Unknown"
	PlaceholderConditions = "None"
	PlaceholderBloodType  = "UNK"
)

// MedicalRecord is the clinical outcome of one completed appointment;
// exactly one record exists per appointment, re-completion updates it
// in place.
type MedicalRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PatientID     uuid.UUID `gorm:"column:patient_id;type:uuid;not null;index"`
	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;not null;uniqueIndex"`

	Diagnosis     string `gorm:"column:diagnosis;type:text"`
	TreatmentPlan string `gorm:"column:treatment_plan;type:text"`

	Allergies         string `gorm:"column:allergies;type:text"`
	ChronicConditions string `gorm:"column:chronic_conditions;type:text"`
	BloodType         string `gorm:"column:blood_type;type:varchar(5)"`

	Prescriptions []Prescription `gorm:"foreignKey:RecordID"`
}

func (MedicalRecord) TableName() string {
	return "clinic.medical_records"
}

// Prescription links an appointment, its medical record, and a catalog
// medication with the prescribed dosage.
type Prescription struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;not null;index"`
	RecordID      uuid.UUID `gorm:"column:record_id;type:uuid;not null;index"`
	MedicationID  uuid.UUID `gorm:"column:medication_id;type:uuid;not null;index"`

	Dosage       string `gorm:"column:dosage;type:varchar(100)"`
	Instructions string `gorm:"column:instructions;type:text"`
}

func (Prescription) TableName() string {
	return "clinic.prescriptions"
}

// LabTest belongs to an appointment. Stored for clinical history; the
// completion workflow does not touch it.
type LabTest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;not null;index"`

	TestName string     `gorm:"column:test_name;type:varchar(100);not null"`
	TestDate *time.Time `gorm:"column:test_date"`
	Results  string     `gorm:"column:results;type:text"`
}

func (LabTest) TableName() string {
	return "clinic.lab_tests"
}

// PrescriptionItem is one line of a visit-completion request.
type PrescriptionItem struct {
	MedicationName string
	Dosage         string
	Instructions   string
}

// CompleteVisitCommand carries the clinical outcome for one appointment.
type CompleteVisitCommand struct {
	Diagnosis     string
	TreatmentPlan string
	Prescriptions []PrescriptionItem
}
