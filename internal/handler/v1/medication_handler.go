package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/vitacare/clinicapi/internal/domain/medication"
	"github.com/vitacare/clinicapi/internal/service"
)

type MedicationHandler struct {
	svc *service.MedicationService
}

func NewMedicationHandler(svc *service.MedicationService) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

type createMedicationRequest struct {
	Name         string `json:"medication_name" binding:"required"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var req createMedicationRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.svc.Create(c.Request.Context(), &medication.CreateMedicationCommand{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, m)
}

func (h *MedicationHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, out)
}
