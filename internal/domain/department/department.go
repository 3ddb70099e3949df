package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Name     string `gorm:"column:name;type:varchar(100);uniqueIndex;not null"`
	Location string `gorm:"column:location;type:varchar(255)"`
}

func (Department) TableName() string {
	return "clinic.departments"
}

type CreateDepartmentCommand struct {
	Name     string
	Location string
}
