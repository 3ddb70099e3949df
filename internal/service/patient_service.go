package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/domain"
	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/domain/patient"
	"github.com/vitacare/clinicapi/pkg/metrics"
)

// treatmentPlanRef is what the visit history shows in place of a full
// treatment plan; the plan itself lives on the medical record.
const treatmentPlanRef = "Див. рецепт"

type PatientService struct {
	tx        domain.Transactor
	patients  patient.Repository
	appts     appointment.Repository
	doctors   doctor.Repository
	collector *metrics.Collector
	log       *zap.Logger
}

func NewPatientService(
	tx domain.Transactor,
	patients patient.Repository,
	appts appointment.Repository,
	doctors doctor.Repository,
	collector *metrics.Collector,
	log *zap.Logger,
) *PatientService {
	return &PatientService{tx: tx, patients: patients, appts: appts, doctors: doctors, collector: collector, log: log}
}

func (s *PatientService) Register(ctx context.Context, cmd *patient.CreatePatientCommand) (*patient.Patient, error) {
	p := &patient.Patient{
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		DateOfBirth: cmd.DateOfBirth,
		PhoneNumber: cmd.PhoneNumber,
		IsActive:    true,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	s.collector.PatientsCreatedTotal.Inc()
	return p, nil
}

func (s *PatientService) List(ctx context.Context, search string) ([]*patient.Patient, error) {
	return s.patients.List(ctx, search)
}

func (s *PatientService) Update(ctx context.Context, id uuid.UUID, cmd *patient.UpdatePatientCommand) (*patient.Patient, error) {
	return s.patients.Update(ctx, id, cmd)
}

// Deactivate soft-deletes the patient and cancels their pending
// appointments, one transaction for both transitions.
func (s *PatientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.patients.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.patients.Deactivate(ctx, id); err != nil {
			return fmt.Errorf("deactivating patient: %w", err)
		}
		if err := s.appts.CancelScheduledForPatient(ctx, id, appointment.DeletedMarker); err != nil {
			return fmt.Errorf("cancelling pending appointments: %w", err)
		}
		return nil
	})
}

// History lists the patient's completed visits that carry a diagnosis.
func (s *PatientService) History(ctx context.Context, patientID uuid.UUID) ([]*patient.VisitHistoryEntry, error) {
	appts, err := s.appts.ListForPatient(ctx, patientID, appointment.StatusCompleted)
	if err != nil {
		return nil, err
	}

	entries := make([]*patient.VisitHistoryEntry, 0, len(appts))
	for _, a := range appts {
		if a.Diagnosis == "" {
			continue
		}
		doctorName := ""
		if doc, err := s.doctors.GetByID(ctx, a.DoctorID); err == nil {
			doctorName = doc.FullName()
		}
		entries = append(entries, &patient.VisitHistoryEntry{
			Date:          a.DateTime,
			Diagnosis:     a.Diagnosis,
			TreatmentPlan: treatmentPlanRef,
			DoctorName:    doctorName,
		})
	}
	return entries, nil
}
