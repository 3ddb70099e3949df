package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/domain/department"
)

type DepartmentService struct {
	departments department.Repository
	log         *zap.Logger
}

func NewDepartmentService(departments department.Repository, log *zap.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, log: log}
}

func (s *DepartmentService) Create(ctx context.Context, cmd *department.CreateDepartmentCommand) (*department.Department, error) {
	d := &department.Department{
		Name:     cmd.Name,
		Location: cmd.Location,
	}
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}
	return d, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]*department.Department, error) {
	return s.departments.List(ctx)
}
