package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redhatfunding/leads-api/internal/log"
)

// SlackNotifier posts one-line alerts to an incoming-webhook URL. When no
// webhook is configured the alert is logged and skipped.
type SlackNotifier struct {
	cfg    Config
	logger *log.Logger
	client *http.Client
}

func NewSlackNotifier(cfg Config, logger *log.Logger) *SlackNotifier {
	return &SlackNotifier{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *SlackNotifier) Send(text string) error {
	if n.cfg.SlackWebhookURL == "" {
		n.logger.Info("Slack notification skipped", "text", text)
		return nil
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to encode Slack payload: %w", err)
	}

	resp, err := n.client.Post(n.cfg.SlackWebhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to post Slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}

	return nil
}
