package handler

import (
	"net/http"

	"hostelhub/backend/internal/hub"
	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and registers the client with
// the hub. The client always joins its role room; an `event` query
// parameter additionally joins an event chat room. Browsers cannot set
// headers on websocket dials, so the token is also accepted as a query
// parameter.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	userID, _, role, err := h.parseJWT(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &hub.WebSocketClient{
		UserID: userID,
		Role:   role,
		Room:   c.Query("event"),
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.HubMessage, 256),
		Log:    h.Log,
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
