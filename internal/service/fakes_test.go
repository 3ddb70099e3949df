package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/department"
	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/domain/medication"
	"github.com/vitacare/clinicapi/internal/domain/patient"
	"github.com/vitacare/clinicapi/internal/domain/record"
	"github.com/vitacare/clinicapi/pkg/metrics"
)

// Prometheus collectors register globally, so the package shares one.
var testCollector = metrics.NewCollector("test")

type fakeTransactor struct{}

func (fakeTransactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time           { return c.now }
func (c fakeClock) Location() *time.Location { return c.now.Location() }

type fakePatientRepo struct {
	byID map[uuid.UUID]*patient.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{byID: make(map[uuid.UUID]*patient.Patient)}
}

func (f *fakePatientRepo) add(p *patient.Patient) *patient.Patient {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.byID[p.ID] = p
	return p
}

func (f *fakePatientRepo) Create(_ context.Context, p *patient.Patient) error {
	for _, existing := range f.byID {
		if existing.PhoneNumber == p.PhoneNumber {
			return patient.ErrPatientAlreadyExists
		}
	}
	f.add(p)
	return nil
}

func (f *fakePatientRepo) GetByID(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	return p, nil
}

func (f *fakePatientRepo) List(_ context.Context, search string) ([]*patient.Patient, error) {
	var out []*patient.Patient
	for _, p := range f.byID {
		if !p.IsActive {
			continue
		}
		if search == "" || strings.Contains(p.FullName(), search) || strings.Contains(p.PhoneNumber, search) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, id uuid.UUID, cmd *patient.UpdatePatientCommand) (*patient.Patient, error) {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cmd.FirstName != nil {
		p.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		p.LastName = *cmd.LastName
	}
	if cmd.PhoneNumber != nil {
		p.PhoneNumber = *cmd.PhoneNumber
	}
	return p, nil
}

func (f *fakePatientRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.IsActive = false
	return nil
}

type fakeDoctorRepo struct {
	byID  map[uuid.UUID]*doctor.Doctor
	stats []*doctor.Stats
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{byID: make(map[uuid.UUID]*doctor.Doctor)}
}

func (f *fakeDoctorRepo) add(d *doctor.Doctor) *doctor.Doctor {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.byID[d.ID] = d
	return d
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *doctor.Doctor) error {
	f.add(d)
	return nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, doctor.ErrDoctorNotFound
	}
	return d, nil
}

func (f *fakeDoctorRepo) List(_ context.Context, specialization string) ([]*doctor.Doctor, error) {
	var out []*doctor.Doctor
	for _, d := range f.byID {
		if specialization == "" || d.Specialization == specialization {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, id uuid.UUID, cmd *doctor.UpdateDoctorCommand) (*doctor.Doctor, error) {
	d, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cmd.FirstName != nil {
		d.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		d.LastName = *cmd.LastName
	}
	if cmd.Specialization != nil {
		d.Specialization = *cmd.Specialization
	}
	if cmd.PricePerVisit != nil {
		d.PricePerVisit = *cmd.PricePerVisit
	}
	if cmd.Status != nil {
		d.Status = *cmd.Status
	}
	return d, nil
}

func (f *fakeDoctorRepo) TopByRevenue(_ context.Context) ([]*doctor.Stats, error) {
	return f.stats, nil
}

type fakeScheduleRepo struct {
	rows map[uuid.UUID]map[string]*doctor.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{rows: make(map[uuid.UUID]map[string]*doctor.Schedule)}
}

func (f *fakeScheduleRepo) set(doctorID uuid.UUID, day, start, end string) {
	if f.rows[doctorID] == nil {
		f.rows[doctorID] = make(map[string]*doctor.Schedule)
	}
	f.rows[doctorID][day] = &doctor.Schedule{
		ID: uuid.New(), DoctorID: doctorID, DayOfWeek: day, StartTime: start, EndTime: end,
	}
}

func (f *fakeScheduleRepo) GetForDay(_ context.Context, doctorID uuid.UUID, dayOfWeek string) (*doctor.Schedule, error) {
	s, ok := f.rows[doctorID][dayOfWeek]
	if !ok {
		return nil, doctor.ErrNotWorkingThatDay
	}
	return s, nil
}

func (f *fakeScheduleRepo) ListForDoctor(_ context.Context, doctorID uuid.UUID) ([]*doctor.Schedule, error) {
	var out []*doctor.Schedule
	for _, s := range f.rows[doctorID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, s *doctor.Schedule) error {
	f.set(s.DoctorID, s.DayOfWeek, s.StartTime, s.EndTime)
	return nil
}

func (f *fakeScheduleRepo) DeleteForDoctor(_ context.Context, doctorID uuid.UUID) error {
	delete(f.rows, doctorID)
	return nil
}

func (f *fakeScheduleRepo) HasAny(_ context.Context, doctorID uuid.UUID) (bool, error) {
	return len(f.rows[doctorID]) > 0, nil
}

type fakeAppointmentRepo struct {
	byID map[uuid.UUID]*appointment.Appointment

	// When set, GetByID attaches the patient the way the store preloads it.
	patients *fakePatientRepo
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[uuid.UUID]*appointment.Appointment)}
}

func (f *fakeAppointmentRepo) add(a *appointment.Appointment) *appointment.Appointment {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.byID[a.ID] = a
	return a
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *appointment.Appointment) error {
	f.add(a)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	if f.patients != nil {
		if p, ok := f.patients.byID[a.PatientID]; ok {
			a.Patient = p
		}
	}
	return a, nil
}

func (f *fakeAppointmentRepo) Save(_ context.Context, a *appointment.Appointment) error {
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) ExistsAt(_ context.Context, doctorID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, a := range f.byID {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.DoctorID == doctorID && a.Status != appointment.StatusCancelled && a.DateTime.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) ListForDoctorBetween(_ context.Context, doctorID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	for _, a := range f.byID {
		if a.DoctorID != doctorID || a.Status == appointment.StatusCancelled {
			continue
		}
		if a.DateTime.Before(from) || a.DateTime.After(to) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (f *fakeAppointmentRepo) ListForDoctor(_ context.Context, doctorID uuid.UUID) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	for _, a := range f.byID {
		if a.DoctorID == doctorID && a.Status != appointment.StatusCancelled {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (f *fakeAppointmentRepo) ListForPatient(_ context.Context, patientID uuid.UUID, status appointment.Status) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	for _, a := range f.byID {
		if a.PatientID == patientID && a.Status == status {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (f *fakeAppointmentRepo) CancelScheduledForPatient(_ context.Context, patientID uuid.UUID, marker string) error {
	for _, a := range f.byID {
		if a.PatientID == patientID && a.Status == appointment.StatusScheduled {
			a.Cancel(marker)
		}
	}
	return nil
}

type fakeDepartmentRepo struct {
	byID map[uuid.UUID]*department.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{byID: make(map[uuid.UUID]*department.Department)}
}

func (f *fakeDepartmentRepo) add(d *department.Department) *department.Department {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.byID[d.ID] = d
	return d
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d *department.Department) error {
	f.add(d)
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id uuid.UUID) (*department.Department, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]*department.Department, error) {
	var out []*department.Department
	for _, d := range f.byID {
		out = append(out, d)
	}
	return out, nil
}

type fakeMedicationRepo struct {
	byName map[string]*medication.Medication
}

func newFakeMedicationRepo() *fakeMedicationRepo {
	return &fakeMedicationRepo{byName: make(map[string]*medication.Medication)}
}

func (f *fakeMedicationRepo) Create(_ context.Context, m *medication.Medication) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.byName[m.Name] = m
	return nil
}

func (f *fakeMedicationRepo) GetByName(_ context.Context, name string) (*medication.Medication, error) {
	m, ok := f.byName[name]
	if !ok {
		return nil, medication.ErrMedicationNotFound
	}
	return m, nil
}

func (f *fakeMedicationRepo) List(_ context.Context) ([]*medication.Medication, error) {
	var out []*medication.Medication
	for _, m := range f.byName {
		out = append(out, m)
	}
	return out, nil
}

type fakeRecordRepo struct {
	byAppointment map[uuid.UUID]*record.MedicalRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{byAppointment: make(map[uuid.UUID]*record.MedicalRecord)}
}

func (f *fakeRecordRepo) GetByAppointment(_ context.Context, appointmentID uuid.UUID) (*record.MedicalRecord, error) {
	r, ok := f.byAppointment[appointmentID]
	if !ok {
		return nil, record.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecordRepo) Create(_ context.Context, r *record.MedicalRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.byAppointment[r.AppointmentID] = r
	return nil
}

func (f *fakeRecordRepo) Save(_ context.Context, r *record.MedicalRecord) error {
	f.byAppointment[r.AppointmentID] = r
	return nil
}

type fakePrescriptionRepo struct {
	items []*record.Prescription
}

func (f *fakePrescriptionRepo) Create(_ context.Context, p *record.Prescription) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.items = append(f.items, p)
	return nil
}

func (f *fakePrescriptionRepo) ListForAppointment(_ context.Context, appointmentID uuid.UUID) ([]*record.Prescription, error) {
	var out []*record.Prescription
	for _, p := range f.items {
		if p.AppointmentID == appointmentID {
			out = append(out, p)
		}
	}
	return out, nil
}
