// Package handler exposes the HTTP surfaces: student, warden,
// housekeeping, and security portals over gin.
package handler

import (
	"errors"
	"net/http"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/hub"
	"hostelhub/backend/internal/notice"
	"hostelhub/backend/internal/notify"
	"hostelhub/backend/internal/security"
	"hostelhub/backend/internal/storage"
	"hostelhub/backend/internal/workorder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds every service the HTTP layer delegates to.
type Handler struct {
	Complaints *complaint.Service
	Relay      *workorder.RelayService
	Notices    *notice.Service
	Security   *security.Service
	Notify     *notify.Service
	Hub        *hub.Manager
	Storage    storage.Storage

	JWTSecret []byte
	Log       *zap.Logger
}

func NewHandler(
	complaints *complaint.Service,
	relay *workorder.RelayService,
	notices *notice.Service,
	securitySvc *security.Service,
	notifier *notify.Service,
	hubManager *hub.Manager,
	store storage.Storage,
	jwtSecret []byte,
	log *zap.Logger,
) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Complaints: complaints,
		Relay:      relay,
		Notices:    notices,
		Security:   securitySvc,
		Notify:     notifier,
		Hub:        hubManager,
		Storage:    store,
		JWTSecret:  jwtSecret,
		Log:        log,
	}
}

// fail maps service errors onto HTTP statuses: validation 400, unknown
// id 404, wrong-state operations 409, out-of-enum transitions 422.
func (h *Handler) fail(c *gin.Context, err error) {
	var (
		validationErr *complaint.ValidationError
		notFoundErr   *complaint.NotFoundError
		precondErr    *complaint.PreconditionError
		transitionErr *complaint.InvalidTransitionError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &precondErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, workorder.ErrUnknownWorkOrder):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.Log.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
