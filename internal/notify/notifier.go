// Package notify содержит fire-and-forget уведомления о событиях
// (успешная запись, ошибка записи, регистрация). Ошибки доставки
// глотаются: уведомления не часть основного контракта.
package notify

import (
	"context"

	"go.uber.org/zap"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

type Notifier interface {
	Notify(ctx context.Context, title, message string, severity Severity)
}

// ZapNotifier пишет уведомления в лог.
type ZapNotifier struct {
	logger *zap.Logger
}

func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Notify(_ context.Context, title, message string, severity Severity) {
	fields := []zap.Field{
		zap.String("title", title),
		zap.String("message", message),
	}

	if severity == SeverityError {
		n.logger.Warn("Notification", fields...)
		return
	}
	n.logger.Info("Notification", fields...)
}

// Multi рассылает уведомление всем приёмникам по очереди.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, title, message string, severity Severity) {
	for _, n := range m {
		n.Notify(ctx, title, message, severity)
	}
}
