package handler

import (
	"net/http"

	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type alertRequest struct {
	Type        string `json:"type" binding:"required"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Description string `json:"description" binding:"required"`
}

// RaiseAlert records a new security incident.
func (h *Handler) RaiseAlert(c *gin.Context) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and description are required"})
		return
	}

	alert, err := h.Security.RaiseAlert(&models.SecurityAlert{
		Type:        req.Type,
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// ListAlerts returns alerts matching the optional type/status filters.
func (h *Handler) ListAlerts(c *gin.Context) {
	alerts, err := h.Security.ListAlerts(storage.AlertFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// ProgressAlert moves an alert to a new status.
func (h *Handler) ProgressAlert(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	alert, err := h.Security.ProgressAlert(c.Param("id"), req.Status, c.GetString(ctxUserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

type attendanceRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	StudentName string `json:"student_name"`
	Date        string `json:"date" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

// MarkAttendance stores one student's attendance mark for a day.
func (h *Handler) MarkAttendance(c *gin.Context) {
	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id, date and status are required"})
		return
	}

	record, err := h.Security.MarkAttendance(&models.AttendanceRecord{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Date:        req.Date,
		Status:      req.Status,
		MarkedBy:    c.GetString(ctxUserName),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// AttendanceByDate lists everyone's marks for a day.
func (h *Handler) AttendanceByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	records, err := h.Security.AttendanceByDate(date)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// MyAttendance lists the logged-in student's attendance history.
func (h *Handler) MyAttendance(c *gin.Context) {
	records, err := h.Security.AttendanceForStudent(c.GetString(ctxUserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
