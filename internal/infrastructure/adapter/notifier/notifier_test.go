package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	coremocks "github.com/camilosanchez/virtual-wallet/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNotification = coreport.TokenNotification{
	Names:  "Carolina Duarte",
	Email:  "carolina@example.com",
	Token:  "123456",
	Amount: "5000.00",
}

func TestWebhookNotifier(t *testing.T) {
	newLogger := func(t *testing.T) *coremocks.MockLogger {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		return logger
	}

	t.Run("Posts the notification as JSON", func(t *testing.T) {
		var received map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		n := NewWebhookNotifier(server.URL, newLogger(t))

		err := n.Send(context.Background(), testNotification)
		require.NoError(t, err)

		assert.Equal(t, "Carolina Duarte", received["nombres"])
		assert.Equal(t, "carolina@example.com", received["email"])
		assert.Equal(t, "123456", received["token"])
		assert.Equal(t, "5000.00", received["monto"])
	})

	t.Run("Non-2xx responses are errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		n := NewWebhookNotifier(server.URL, newLogger(t))

		err := n.Send(context.Background(), testNotification)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Unreachable endpoint is an error", func(t *testing.T) {
		n := NewWebhookNotifier("http://127.0.0.1:1/webhook", newLogger(t))

		err := n.Send(context.Background(), testNotification)
		assert.Error(t, err)
	})
}

func TestLogNotifier(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().
		Info("Payment token notification", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["email"] == "carolina@example.com" && fields["token"] == "123456"
		})).
		Once()

	n := NewLogNotifier(logger)

	err := n.Send(context.Background(), testNotification)
	assert.NoError(t, err)
}
