package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// TelegramNotifier шлёт уведомления в админский чат.
// Включается только если в конфиге заданы токен и chat id.
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
	logger *zap.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    b,
		chatID: chatID,
		logger: logger,
	}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, title, message string, severity Severity) {
	icon := "✅"
	if severity == SeverityError {
		icon = "❌"
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   fmt.Sprintf("%s %s\n%s", icon, title, message),
	})

	if err != nil {
		// Доставка best-effort, операцию из-за уведомления не валим
		n.logger.Warn("Failed to send telegram notification", zap.Error(err))
	}
}
