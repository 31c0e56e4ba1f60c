package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/email-triage/internal/models"
	"go.uber.org/zap"
)

// TelegramNotifier sends triage alerts to a Telegram chat. It is the
// production alternative to the console stand-in.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
		logger: logger,
	}, nil
}

func (n *TelegramNotifier) Notify(email models.ProcessedEmail) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatAlert(email))
	if _, err := n.api.Send(msg); err != nil {
		n.logger.Error("Failed to send alert",
			zap.Error(err),
			zap.Int64("chat_id", n.chatID),
			zap.String("channel", email.Channel))
		return fmt.Errorf("failed to send alert: %w", err)
	}
	return nil
}
