package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// EmailGW posts notification mail to the configured delivery provider's
// HTTP API.
type EmailGW struct {
	cfg    models.EmailConfig
	client *http.Client
}

// NewEmailGW creates a new email gateway
func NewEmailGW(cfg models.EmailConfig) *EmailGW {
	return &EmailGW{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type emailPayload struct {
	FromAddress string `json:"from_address"`
	FromName    string `json:"from_name"`
	To          string `json:"to"`
	Subject     string `json:"subject"`
	HTML        string `json:"html"`
}

// SendEmail delivers a single HTML mail through the provider
func (g *EmailGW) SendEmail(ctx context.Context, to, subject, html string) error {
	payload, err := json.Marshal(emailPayload{
		FromAddress: g.cfg.FromAddress,
		FromName:    g.cfg.FromName,
		To:          to,
		Subject:     subject,
		HTML:        html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.ProviderURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
