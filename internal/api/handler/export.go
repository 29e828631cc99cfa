package handler

import (
	"fmt"
	"net/http"
	"time"

	"hostelhub/backend/internal/export"
	"hostelhub/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportComplaints streams the complaint report workbook.
func (h *Handler) ExportComplaints(c *gin.Context) {
	complaints, err := h.Complaints.List(storage.ComplaintFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	workbook, err := export.ComplaintReport(complaints)
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("complaints-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

// ExportAttendance streams the attendance workbook for a day.
func (h *Handler) ExportAttendance(c *gin.Context) {
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

	workbook, err := export.AttendanceReport(records)
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", date)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
