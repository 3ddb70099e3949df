package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitacare/clinicapi/internal/domain/appointment"
	"github.com/vitacare/clinicapi/internal/domain/record"
	"github.com/vitacare/clinicapi/internal/service"
	"github.com/vitacare/clinicapi/pkg/clock"
)

type AppointmentHandler struct {
	appts  *service.AppointmentService
	visits *service.VisitService
	clk    clock.Clock
}

func NewAppointmentHandler(appts *service.AppointmentService, visits *service.VisitService, clk clock.Clock) *AppointmentHandler {
	return &AppointmentHandler{appts: appts, visits: visits, clk: clk}
}

type createAppointmentRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
	DoctorID  string `json:"doctor_id" binding:"required,uuid"`
	DateTime  string `json:"date_time" binding:"required"`
	Symptoms  string `json:"symptoms"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	patientID, ok := parseUUIDString(c, req.PatientID, "patient_id")
	if !ok {
		return
	}
	doctorID, ok := parseUUIDString(c, req.DoctorID, "doctor_id")
	if !ok {
		return
	}
	at, ok := parseClinicTime(req.DateTime, h.clk.Location())
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_time: expected ISO 8601 without zone"})
		return
	}

	a, err := h.appts.Book(c.Request.Context(), &appointment.CreateAppointmentCommand{
		PatientID: patientID,
		DoctorID:  doctorID,
		DateTime:  at,
		Symptoms:  req.Symptoms,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, a)
}

type updateAppointmentRequest struct {
	DateTime *string `json:"date_time"`
	Symptoms *string `json:"symptoms"`
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req updateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := &appointment.UpdateAppointmentCommand{Symptoms: req.Symptoms}
	if req.DateTime != nil {
		at, ok := parseClinicTime(*req.DateTime, h.clk.Location())
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_time: expected ISO 8601 without zone"})
			return
		}
		cmd.DateTime = &at
	}

	a, err := h.appts.Reschedule(c.Request.Context(), id, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.appts.Cancel(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(appointment.StatusCancelled)})
}

type prescriptionItemRequest struct {
	MedicationName string `json:"medication_name" binding:"required"`
	Dosage         string `json:"dosage"`
	Instructions   string `json:"instructions"`
}

type completeAppointmentRequest struct {
	Diagnosis     string                    `json:"diagnosis" binding:"required"`
	TreatmentPlan string                    `json:"treatment_plan"`
	Prescriptions []prescriptionItemRequest `json:"prescriptions"`
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req completeAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]record.PrescriptionItem, 0, len(req.Prescriptions))
	for _, p := range req.Prescriptions {
		items = append(items, record.PrescriptionItem{
			MedicationName: p.MedicationName,
			Dosage:         p.Dosage,
			Instructions:   p.Instructions,
		})
	}

	err := h.visits.Complete(c.Request.Context(), id, &record.CompleteVisitCommand{
		Diagnosis:     req.Diagnosis,
		TreatmentPlan: req.TreatmentPlan,
		Prescriptions: items,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
