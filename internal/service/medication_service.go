package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/domain/medication"
)

type MedicationService struct {
	medications medication.Repository
	log         *zap.Logger
}

func NewMedicationService(medications medication.Repository, log *zap.Logger) *MedicationService {
	return &MedicationService{medications: medications, log: log}
}

func (s *MedicationService) Create(ctx context.Context, cmd *medication.CreateMedicationCommand) (*medication.Medication, error) {
	m := &medication.Medication{
		Name:         strings.TrimSpace(cmd.Name),
		Manufacturer: cmd.Manufacturer,
		Description:  cmd.Description,
	}
	if err := s.medications.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("creating medication: %w", err)
	}
	return m, nil
}

func (s *MedicationService) List(ctx context.Context) ([]*medication.Medication, error) {
	return s.medications.List(ctx)
}
