package service

import (
	"context"
	"log/slog"
)

// Notifier delivers the morning review reminder. The production push
// transport plugs in here; the default just logs.
type Notifier interface {
	SendReminder(ctx context.Context, pushToken, nickname string, reviewCount int) error
}

type logNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendReminder(ctx context.Context, pushToken, nickname string, reviewCount int) error {
	n.logger.Info("Review reminder",
		"nickname", nickname,
		"review_count", reviewCount,
	)
	return nil
}
