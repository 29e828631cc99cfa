package hub

import (
	"encoding/json"
	"time"

	"hostelhub/backend/internal/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocketClient implements the hub.Client interface over a gorilla
// websocket connection.
type WebSocketClient struct {
	UserID string
	Role   string
	Room   string
	Conn   *websocket.Conn
	Hub    *Manager
	Send   chan models.HubMessage
	Log    *zap.Logger
}

func (c *WebSocketClient) GetUserID() string { return c.UserID }
func (c *WebSocketClient) GetRole() string   { return c.Role }
func (c *WebSocketClient) GetRoom() string   { return c.Room }
func (c *WebSocketClient) SetRoom(id string) { c.Room = id }

func (c *WebSocketClient) GetSendChannel() chan<- models.HubMessage { return c.Send }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump. The read
// pump stops itself when the connection closes.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Log.Warn("websocket read failed", zap.Error(err))
			}
			break
		}

		var msg models.HubMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.Log.Warn("bad message from client",
				zap.String("user_id", c.UserID), zap.Error(err))
			continue
		}

		// The sender identity always comes from the session, never from
		// the payload.
		msg.SenderID = c.UserID
		c.Hub.IncomingCh <- msg
	}
}

// writePump drains the Send channel into the websocket and keeps the
// connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(message)
			if err != nil {
				c.Log.Error("failed to encode outbound message", zap.Error(err))
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)

			// Flush anything else already queued.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				next := <-c.Send
				extra, _ := json.Marshal(next)
				w.Write(extra)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
