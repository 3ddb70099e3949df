package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitacare/clinicapi/internal/domain/doctor"
	"github.com/vitacare/clinicapi/internal/scheduling"
	"github.com/vitacare/clinicapi/internal/service"
)

type DoctorHandler struct {
	svc   *service.DoctorService
	slots *service.SlotService
	appts *service.AppointmentService
}

func NewDoctorHandler(svc *service.DoctorService, slots *service.SlotService, appts *service.AppointmentService) *DoctorHandler {
	return &DoctorHandler{svc: svc, slots: slots, appts: appts}
}

type createDoctorRequest struct {
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Specialization string  `json:"specialization"`
	DepartmentID   string  `json:"department_id" binding:"required,uuid"`
	PricePerVisit  float64 `json:"price_per_visit"`
	ScheduleStart  string  `json:"schedule_start"`
	ScheduleEnd    string  `json:"schedule_end"`
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req createDoctorRequest
	if !bindJSON(c, &req) {
		return
	}
	departmentID, ok := parseUUIDString(c, req.DepartmentID, "department_id")
	if !ok {
		return
	}

	d, err := h.svc.Hire(c.Request.Context(), &doctor.CreateDoctorCommand{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		DepartmentID:   departmentID,
		PricePerVisit:  req.PricePerVisit,
		ScheduleStart:  req.ScheduleStart,
		ScheduleEnd:    req.ScheduleEnd,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, d)
}

func (h *DoctorHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), c.Query("specialization"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, out)
}

type updateDoctorRequest struct {
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	Specialization *string  `json:"specialization"`
	PricePerVisit  *float64 `json:"price_per_visit"`
	Status         *string  `json:"availability_status"`
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req updateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := &doctor.UpdateDoctorCommand{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		PricePerVisit:  req.PricePerVisit,
	}
	if req.Status != nil {
		status := doctor.AvailabilityStatus(*req.Status)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid availability_status"})
			return
		}
		cmd.Status = &status
	}

	d, err := h.svc.Update(c.Request.Context(), id, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

func (h *DoctorHandler) Fire(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Fire(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(doctor.StatusFired)})
}

func (h *DoctorHandler) GetSchedule(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.WeeklySchedule(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, out)
}

type scheduleItemRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type updateScheduleRequest struct {
	Schedules []scheduleItemRequest `json:"schedules" binding:"required"`
}

func (h *DoctorHandler) UpdateSchedule(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req updateScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]doctor.ScheduleItem, 0, len(req.Schedules))
	for _, s := range req.Schedules {
		items = append(items, doctor.ScheduleItem{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	if err := h.svc.SetWeeklySchedule(c.Request.Context(), id, items); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// GetSlots returns the 20-minute availability grid for ?date=YYYY-MM-DD.
// Invalid input yields an empty grid, not an error.
func (h *DoctorHandler) GetSlots(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	slots := h.slots.GetSlots(c.Request.Context(), id, c.Query("date"))
	if slots == nil {
		slots = []scheduling.Slot{}
	}
	c.JSON(http.StatusOK, slots)
}

func (h *DoctorHandler) ListAppointments(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	out, err := h.appts.ListForDoctor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, out)
}

func (h *DoctorHandler) TopByRevenue(c *gin.Context) {
	out, err := h.svc.TopByRevenue(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, out)
}
