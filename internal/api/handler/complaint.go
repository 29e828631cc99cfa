package handler

import (
	"net/http"

	"hostelhub/backend/internal/analysis"
	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type createComplaintRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
}

// CreateComplaint files a new complaint for the logged-in student. The
// identity snapshot (id, name, room) comes from the account record, not
// the request body.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and description are required"})
		return
	}

	user, err := h.Storage.GetUserByID(c.GetString(ctxUserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
		return
	}

	created, err := h.Complaints.Create(complaint.CreateInput{
		StudentID:   user.ID,
		StudentName: user.Name,
		RoomNumber:  user.RoomNumber,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetComplaint returns a single complaint by id.
func (h *Handler) GetComplaint(c *gin.Context) {
	found, err := h.Complaints.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

type updateComplaintRequest struct {
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// UpdateComplaint edits the mutable fields of the student's own
// complaint. Status changes go through the warden's transition endpoint.
func (h *Handler) UpdateComplaint(c *gin.Context) {
	var req updateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	existing, err := h.Complaints.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if existing.StudentID != c.GetString(ctxUserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your complaint"})
		return
	}

	updated, err := h.Complaints.Update(c.Param("id"), complaint.UpdatePatch{
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MyComplaints lists the logged-in student's complaints.
func (h *Handler) MyComplaints(c *gin.Context) {
	complaints, err := h.Complaints.List(storage.ComplaintFilter{
		StudentID: c.GetString(ctxUserID),
		Status:    c.Query("status"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

type ratingRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

// SubmitRating closes the loop on a resolved complaint.
func (h *Handler) SubmitRating(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}

	updated, err := h.Complaints.SubmitRating(c.Param("id"), c.GetString(ctxUserID), req.Rating, req.Feedback)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListComplaints is the warden view with optional filters.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Complaints.List(storage.ComplaintFilter{
		StudentID: c.Query("student_id"),
		Status:    c.Query("status"),
		Category:  c.Query("category"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// TransitionComplaint moves a complaint to a new status on the warden's
// behalf; entering in-progress issues the housekeeping work order.
func (h *Handler) TransitionComplaint(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	updated, err := h.Complaints.Transition(c.Param("id"), req.Status, c.GetString(ctxUserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type assignRequest struct {
	AssignedTo string `json:"assigned_to" binding:"required"`
}

// AssignComplaint sets the responsible staff member.
func (h *Handler) AssignComplaint(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assigned_to is required"})
		return
	}

	updated, err := h.Complaints.Assign(c.Param("id"), req.AssignedTo)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Dashboard returns the warden's aggregate view: the status histogram
// plus the category and resolution-time summary.
func (h *Handler) Dashboard(c *gin.Context) {
	counts, err := h.Complaints.StatusCounts()
	if err != nil {
		h.fail(c, err)
		return
	}
	complaints, err := h.Complaints.List(storage.ComplaintFilter{})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_counts": counts,
		"summary":       analysis.Summarize(complaints),
	})
}

// StaffRoster returns the fixed assignment list the warden surface offers.
func (h *Handler) StaffRoster(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"staff": config.StaffRoster})
}

// SOS broadcasts an emergency alert from a student to the security desk.
func (h *Handler) SOS(c *gin.Context) {
	user, err := h.Storage.GetUserByID(c.GetString(ctxUserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
		return
	}

	if h.Notify != nil {
		h.Notify.NotifySOS(user.ID, user.Name, user.RoomNumber)
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "sos dispatched"})
}

// Categories returns the fixed complaint category set.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.ComplaintCategories})
}
