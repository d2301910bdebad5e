package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/farmdash/internal/config"
	"github.com/mamadbah2/farmdash/internal/service/stats"
)

// Client exposes the outbound alert delivery operation.
type Client interface {
	SendAlerts(ctx context.Context, payload AlertPayload) error
}

// AlertPayload is the body POSTed to the configured webhook.
type AlertPayload struct {
	Source  string        `json:"source"`
	SentAt  time.Time     `json:"sentAt"`
	Alerts  []stats.Alert `json:"alerts"`
	Summary string        `json:"summary"`
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds an alert webhook client using the provided configuration.
func NewClient(cfg config.AlertsConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// SendAlerts posts the alert payload to the webhook.
func (c *WebhookClient) SendAlerts(ctx context.Context, payload AlertPayload) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send alert webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("alert webhook error: status=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
