package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/domain"
	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/medication"
	"github.com/vitacare/clinicapi/internal/domain/record"
	"github.com/vitacare/clinicapi/pkg/metrics"
)

// VisitService finalizes appointments: marks them completed, writes the
// medical record, and reconciles prescriptions against the medication
// catalog.
type VisitService struct {
	tx            domain.Transactor
	appts         appointment.Repository
	records       record.Repository
	prescriptions record.PrescriptionRepository
	medications   medication.Repository
	collector     *metrics.Collector
	log           *zap.Logger
}

func NewVisitService(
	tx domain.Transactor,
	appts appointment.Repository,
	records record.Repository,
	prescriptions record.PrescriptionRepository,
	medications medication.Repository,
	collector *metrics.Collector,
	log *zap.Logger,
) *VisitService {
	return &VisitService{
		tx: tx, appts: appts, records: records, prescriptions: prescriptions,
		medications: medications, collector: collector, log: log,
	}
}

// Complete transitions the appointment to completed and persists the
// clinical outcome. Re-completing the same appointment updates the existing
// record's diagnosis instead of creating a second one. All writes happen in
// one transaction; any failure rolls everything back, including medications
// auto-created earlier in the same call.
func (s *VisitService) Complete(ctx context.Context, appointmentID uuid.UUID, cmd *record.CompleteVisitCommand) error {
	autoCreated := 0
	issued := 0

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		a, err := s.appts.GetByID(ctx, appointmentID)
		if err != nil {
			return err
		}

		a.Status = appointment.StatusCompleted
		a.Diagnosis = cmd.Diagnosis
		if err := s.appts.Save(ctx, a); err != nil {
			return fmt.Errorf("saving appointment: %w", err)
		}

		rec, err := s.records.GetByAppointment(ctx, a.ID)
		switch {
		case err == nil:
			rec.Diagnosis = cmd.Diagnosis
			if err := s.records.Save(ctx, rec); err != nil {
				return fmt.Errorf("updating medical record: %w", err)
			}
		case errors.Is(err, record.ErrRecordNotFound):
			rec = &record.MedicalRecord{
				PatientID:         a.PatientID,
				AppointmentID:     a.ID,
				Diagnosis:         cmd.Diagnosis,
				TreatmentPlan:     cmd.TreatmentPlan,
				Allergies:         record.PlaceholderAllergies,
				ChronicConditions: record.PlaceholderConditions,
				BloodType:         record.PlaceholderBloodType,
			}
			if err := s.records.Create(ctx, rec); err != nil {
				return fmt.Errorf("creating medical record: %w", err)
			}
		default:
			return fmt.Errorf("loading medical record: %w", err)
		}

		for _, item := range cmd.Prescriptions {
			name := strings.TrimSpace(item.MedicationName)

			med, err := s.medications.GetByName(ctx, name)
			if errors.Is(err, medication.ErrMedicationNotFound) {
				med = &medication.Medication{
					Name:         name,
					Manufacturer: medication.AutoManufacturer,
					Description:  medication.AutoDescription,
				}
				if err := s.medications.Create(ctx, med); err != nil {
					return fmt.Errorf("creating medication %q: %w", name, err)
				}
				autoCreated++
			} else if err != nil {
				return fmt.Errorf("looking up medication %q: %w", name, err)
			}

			p := &record.Prescription{
				AppointmentID: a.ID,
				RecordID:      rec.ID,
				MedicationID:  med.ID,
				Dosage:        item.Dosage,
				Instructions:  item.Instructions,
			}
			if err := s.prescriptions.Create(ctx, p); err != nil {
				return fmt.Errorf("creating prescription: %w", err)
			}
			issued++
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.collector.AppointmentsTotal.WithLabelValues(string(appointment.StatusCompleted)).Inc()
	s.collector.PrescriptionsIssued.Add(float64(issued))
	s.collector.MedicationsAutoAdded.Add(float64(autoCreated))

	return nil
}
