package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/farmdash/internal/config"
	"github.com/mamadbah2/farmdash/internal/service/stats"
)

func TestSendAlertsPostsPayload(t *testing.T) {
	var received AlertPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(config.AlertsConfig{WebhookURL: srv.URL})
	payload := AlertPayload{
		Source:  "farmdash",
		SentAt:  time.Date(2024, time.March, 15, 20, 0, 0, 0, time.UTC),
		Alerts:  []stats.Alert{{Title: "Health Alert", Description: "Animal #a1 needs attention", Severity: "error"}},
		Summary: "1 animals need attention",
	}

	require.NoError(t, client.SendAlerts(context.Background(), payload))
	assert.Equal(t, payload.Source, received.Source)
	require.Len(t, received.Alerts, 1)
	assert.Equal(t, "Health Alert", received.Alerts[0].Title)
}

func TestSendAlertsSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(config.AlertsConfig{WebhookURL: srv.URL})
	err := client.SendAlerts(context.Background(), AlertPayload{Source: "farmdash"})
	assert.Error(t, err)
}
