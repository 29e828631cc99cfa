// Package notify pushes best-effort staff notifications: Telegram
// messages to the shared staff chat and live hub broadcasts to the
// role rooms. Delivery failures are logged and never propagate to the
// workflow that triggered them.
package notify

import (
	"fmt"
	"strconv"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Broadcaster publishes a message into a hub broadcast room.
// Implemented by hub.Manager.
type Broadcaster interface {
	Broadcast(room string, msg models.HubMessage) error
}

// Service implements the staff side channel. Bot may be nil (Telegram
// disabled); Hub may be nil (no live pushes).
type Service struct {
	Bot         *tgbotapi.BotAPI
	StaffChatID int64
	Hub         Broadcaster
	Log         *zap.Logger
}

// NewService wires the notifier. token and staffChatID both empty
// disables Telegram; the hub side still works.
func NewService(token, staffChatID string, hub Broadcaster, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	svc := &Service{Hub: hub, Log: log}

	if token == "" {
		return svc, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to start telegram bot: %w", err)
	}
	chatID, err := strconv.ParseInt(staffChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid staff chat id %q: %w", staffChatID, err)
	}
	svc.Bot = bot
	svc.StaffChatID = chatID
	log.Info("telegram staff channel enabled", zap.String("bot", bot.Self.UserName))
	return svc, nil
}

// NotifyComplaintCreated tells the warden channel about a new complaint.
func (s *Service) NotifyComplaintCreated(c *models.Complaint) {
	text := fmt.Sprintf("*New complaint* (%s)\nRoom %s, %s\n%s",
		c.Category, c.RoomNumber, c.StudentName, c.Description)
	s.sendTelegram(text)
	s.broadcast(config.RoomWarden, models.HubMessage{
		Kind:   "system",
		Sender: c.StudentName,
		Body:   fmt.Sprintf("New %s complaint from room %s", c.Category, c.RoomNumber),
	})
}

// NotifyWorkOrder tells housekeeping a work order was issued.
func (s *Service) NotifyWorkOrder(order models.WorkOrder) {
	text := fmt.Sprintf("*Work order* (%s)\nRoom %s, %s\n%s",
		order.Category, order.RoomNumber, order.StudentName, order.Description)
	s.sendTelegram(text)
	s.broadcast(config.RoomHousekeeping, models.HubMessage{
		Kind:   "work_order",
		Sender: order.StudentName,
		Body:   fmt.Sprintf("Work order for room %s: %s", order.RoomNumber, order.Description),
	})
}

// NotifySOS fans an emergency alert out to the security room and the
// staff chat.
func (s *Service) NotifySOS(studentID, studentName, roomNumber string) {
	text := fmt.Sprintf("*SOS* from %s (room %s)", studentName, roomNumber)
	s.sendTelegram(text)
	s.broadcast(config.RoomSecurity, models.HubMessage{
		Kind:     "sos",
		SenderID: studentID,
		Sender:   studentName,
		Body:     fmt.Sprintf("SOS from %s, room %s", studentName, roomNumber),
	})
}

func (s *Service) sendTelegram(text string) {
	if s.Bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(s.StaffChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := s.Bot.Send(msg); err != nil {
		s.Log.Error("telegram notification failed", zap.Error(err))
	}
}

func (s *Service) broadcast(room string, msg models.HubMessage) {
	if s.Hub == nil {
		return
	}
	if err := s.Hub.Broadcast(room, msg); err != nil {
		s.Log.Error("hub broadcast failed",
			zap.String("room", room), zap.Error(err))
	}
}
