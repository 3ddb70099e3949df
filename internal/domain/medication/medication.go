package medication

import (
	"time"

	"github.com/google/uuid"
)

// Auto-created catalog entries get these placeholder values; name uniqueness
// is by convention only, the store does not enforce it.
const (
	AutoManufacturer = "Generic"
	AutoDescription  = "Added automatically from a prescription"
)

type Medication struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Name         string `gorm:"column:medication_name;type:varchar(100);not null;index"`
	Manufacturer string `gorm:"column:manufacturer;type:varchar(100)"`
	Description  string `gorm:"column:description;type:text"`
}

func (Medication) TableName() string {
	return "clinic.medications"
}

type CreateMedicationCommand struct {
	Name         string
	Manufacturer string
	Description  string
}
