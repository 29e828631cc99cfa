package handler

import (
	"net/http"
	"time"

	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type noticeRequest struct {
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content" binding:"required"`
	Category   string     `json:"category"`
	Tags       []string   `json:"tags"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// PublishNotice posts a new announcement on the board.
func (h *Handler) PublishNotice(c *gin.Context) {
	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	notice, err := h.Notices.PublishNotice(&models.Notice{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Tags:       pq.StringArray(req.Tags),
		CreatedBy:  c.GetString(ctxUserName),
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, notice)
}

// DeleteNotice removes an announcement from the board.
func (h *Handler) DeleteNotice(c *gin.Context) {
	if err := h.Notices.RemoveNotice(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ActiveNotices is the student view of the board: unexpired only.
func (h *Handler) ActiveNotices(c *gin.Context) {
	notices, err := h.Notices.ActiveNotices()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

// AllNotices is the warden view, expired entries included.
func (h *Handler) AllNotices(c *gin.Context) {
	notices, err := h.Notices.AllNotices()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

type eventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Organizer   string `json:"organizer"`
	ChatEnabled bool   `json:"chat_enabled"`
}

// CreateEvent registers a hostel event; the creator moderates its chat.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	event, err := h.Notices.CreateEvent(&models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		Organizer:   req.Organizer,
		ChatEnabled: req.ChatEnabled,
		AdminID:     c.GetString(ctxUserID),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ListEvents returns all hostel events.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Notices.ListEvents()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// EventChatHistory returns the persisted chat log for an event room.
func (h *Handler) EventChatHistory(c *gin.Context) {
	history, err := h.Notices.EventChatHistory(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
