package v1

import "github.com/gin-gonic/gin"

// Register mounts the v1 API routes.
func Register(
	r gin.IRouter,
	departments *DepartmentHandler,
	doctors *DoctorHandler,
	patients *PatientHandler,
	appointments *AppointmentHandler,
	medications *MedicationHandler,
) {
	api := r.Group("/api/v1")

	api.GET("/departments", departments.List)
	api.POST("/departments", departments.Create)

	api.GET("/doctors", doctors.List)
	api.POST("/doctors", doctors.Create)
	api.PUT("/doctors/:id", doctors.Update)
	api.DELETE("/doctors/:id", doctors.Fire)
	api.GET("/doctors/:id/schedule", doctors.GetSchedule)
	api.PUT("/doctors/:id/schedule", doctors.UpdateSchedule)
	api.GET("/doctors/:id/slots", doctors.GetSlots)
	api.GET("/doctors/:id/appointments", doctors.ListAppointments)

	api.GET("/patients", patients.List)
	api.POST("/patients", patients.Create)
	api.PUT("/patients/:id", patients.Update)
	api.DELETE("/patients/:id", patients.Deactivate)
	api.GET("/patients/:id/history", patients.History)

	api.GET("/medications", medications.List)
	api.POST("/medications", medications.Create)

	api.POST("/appointments", appointments.Create)
	api.PUT("/appointments/:id", appointments.Reschedule)
	api.POST("/appointments/:id/cancel", appointments.Cancel)
	api.POST("/appointments/:id/complete", appointments.Complete)

	api.GET("/analytics/doctors", doctors.TopByRevenue)
}
