// Package answer is the client for the upstream answer-generation service.
// The service is an opaque producer of candidate responses; failures here are
// generation failures, nothing more is modeled.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config is passed at construction. No ambient app context, no singleton.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Segment struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type GenerateResponse struct {
	Segments         []Segment       `json:"segments"`
	SourceReferences json.RawMessage `json:"source_references,omitempty"`
	ServiceVersion   string          `json:"service_version,omitempty"`
}

type Client interface {
	Generate(ctx context.Context, intent string, slots map[string]string) (*GenerateResponse, error)
}

type client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	MessageId   string            `json:"message_id"`
	Intent      string            `json:"intent"`
	Slots       map[string]string `json:"slots"`
	Confidence  float64           `json:"confidence"`
	AppVersion  string            `json:"app_version"`
	DeviceClass string            `json:"device_class"`
}

func (c *client) Generate(ctx context.Context, intent string, slots map[string]string) (*GenerateResponse, error) {
	payload := generateRequest{
		MessageId:   "qa-review",
		Intent:      intent,
		Slots:       slots,
		Confidence:  1.0,
		AppVersion:  "qa-review-1.0",
		DeviceClass: "qa_review",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("answer service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("answer service returned status %d", resp.StatusCode)
	}

	var out GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("answer service response decode failed: %w", err)
	}
	return &out, nil
}
