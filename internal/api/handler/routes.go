package handler

import (
	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every portal surface onto the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.GET("/ws", h.ServeWebSocket)

	api := r.Group("/api", h.RequireAuth())

	student := api.Group("/student", h.RequireRole(models.RoleStudent))
	{
		student.POST("/complaints", h.CreateComplaint)
		student.GET("/complaints", h.MyComplaints)
		student.PUT("/complaints/:id", h.UpdateComplaint)
		student.POST("/complaints/:id/rating", h.SubmitRating)
		student.GET("/categories", h.Categories)
		student.GET("/notices", h.ActiveNotices)
		student.GET("/events", h.ListEvents)
		student.GET("/events/:id/chat", h.EventChatHistory)
		student.GET("/attendance", h.MyAttendance)
		student.POST("/sos", h.SOS)
	}

	warden := api.Group("/warden", h.RequireRole(models.RoleWarden))
	{
		warden.GET("/complaints", h.ListComplaints)
		warden.GET("/complaints/:id", h.GetComplaint)
		warden.PUT("/complaints/:id/status", h.TransitionComplaint)
		warden.GET("/students", h.ListStudents)
		warden.PUT("/complaints/:id/assign", h.AssignComplaint)
		warden.GET("/dashboard", h.Dashboard)
		warden.GET("/staff", h.StaffRoster)
		warden.POST("/notices", h.PublishNotice)
		warden.GET("/notices", h.AllNotices)
		warden.DELETE("/notices/:id", h.DeleteNotice)
		warden.POST("/events", h.CreateEvent)
		warden.GET("/events", h.ListEvents)
		warden.GET("/alerts", h.ListAlerts)
		warden.POST("/attendance", h.MarkAttendance)
		warden.GET("/attendance", h.AttendanceByDate)
		warden.GET("/export/complaints", h.ExportComplaints)
		warden.GET("/export/attendance", h.ExportAttendance)
	}

	housekeeping := api.Group("/housekeeping", h.RequireRole(models.RoleHousekeeping))
	{
		housekeeping.GET("/workorders", h.WorkOrders)
		housekeeping.POST("/workorders/:id/complete", h.CompleteWorkOrder)
	}

	securityDesk := api.Group("/security", h.RequireRole(models.RoleSecurity))
	{
		securityDesk.POST("/alerts", h.RaiseAlert)
		securityDesk.GET("/alerts", h.ListAlerts)
		securityDesk.PUT("/alerts/:id/status", h.ProgressAlert)
		securityDesk.POST("/attendance", h.MarkAttendance)
		securityDesk.GET("/attendance", h.AttendanceByDate)
	}
}
