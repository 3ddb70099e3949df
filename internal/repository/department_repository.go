package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitacare/clinicapi/internal/domain/department"
)

type DepartmentRepository struct {
	db *gorm.DB
}

var _ department.Repository = (*DepartmentRepository)(nil)

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	err := conn(ctx, r.db).Create(d).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return department.ErrDepartmentAlreadyExists
	}
	return err
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	var d department.Department
	err := conn(ctx, r.db).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, department.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	var out []*department.Department
	if err := conn(ctx, r.db).Order("name asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
