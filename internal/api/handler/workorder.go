package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkOrders returns the housekeeping queue split by bucket. The split
// is a non-destructive view: entries stay in the queue either way.
func (h *Handler) WorkOrders(c *gin.Context) {
	switch c.DefaultQuery("bucket", "pending") {
	case "pending":
		orders, err := h.Relay.Pending()
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	case "completed":
		orders, err := h.Relay.Completed()
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "bucket must be pending or completed"})
	}
}

// CompleteWorkOrder marks a work order done in the housekeeping view.
// The originating complaint is not touched; resolution stays with the
// warden.
func (h *Handler) CompleteWorkOrder(c *gin.Context) {
	if err := h.Relay.MarkComplete(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
