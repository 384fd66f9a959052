package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
)

const defaultTimeout = 5 * time.Second

// WebhookNotifier delivers payment tokens by POSTing them to a configured URL.
// A slow or unreachable endpoint must not block the payment flow, so requests
// carry a short timeout.
type WebhookNotifier struct {
	url    string
	client *http.Client
	logger coreport.Logger
}

// NewWebhookNotifier creates a notifier that posts to the given URL
func NewWebhookNotifier(url string, logger coreport.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
		logger: logger,
	}
}

// Send posts the token notification as JSON
func (n *WebhookNotifier) Send(ctx context.Context, notification coreport.TokenNotification) error {
	payload, err := json.Marshal(map[string]string{
		"nombres": notification.Names,
		"email":   notification.Email,
		"token":   notification.Token,
		"monto":   notification.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	n.logger.Debug("Token notification delivered", map[string]any{
		"email": notification.Email,
	})
	return nil
}
