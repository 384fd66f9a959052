package notifier

import (
	"context"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
)

// LogNotifier writes token notifications to the logger. Used when no webhook
// URL is configured, which keeps local and test environments mail-free.
type LogNotifier struct {
	logger coreport.Logger
}

// NewLogNotifier creates a logging notifier
func NewLogNotifier(logger coreport.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send writes the notification to the structured logger
func (n *LogNotifier) Send(_ context.Context, notification coreport.TokenNotification) error {
	n.logger.Info("Payment token notification", map[string]any{
		"nombres": notification.Names,
		"email":   notification.Email,
		"token":   notification.Token,
		"monto":   notification.Amount,
	})
	return nil
}
