// Package push sends push notifications through an HTTP push gateway.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"varto/internal/core/ports"
)

const defaultRequestTimeout = 5 * time.Second

// payload is the gateway's wire format for one message.
type payload struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Client implements ports.PushSender against an HTTP push gateway such as
// the Expo push API or a self-hosted relay.
type Client struct {
	gatewayURL string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a push gateway client. The apiKey may be empty when the
// gateway does not require authentication.
func NewClient(gatewayURL, apiKey string) (*Client, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("gatewayURL must not be empty")
	}

	return &Client{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

// Send posts one message to the gateway. Any non-2xx response is an error so
// the dispatcher marks the notification for retry.
func (c *Client) Send(ctx context.Context, message ports.PushMessage) error {
	body, err := json.Marshal(payload{
		To:    message.DeviceToken,
		Title: message.Title,
		Body:  message.Body,
		Data:  message.Data,
	})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, snippet)
	}

	return nil
}

// NopSender discards every message. Used when no push gateway is configured
// so notification persistence still works in development setups.
type NopSender struct{}

// NewNopSender creates a sender that accepts and drops everything.
func NewNopSender() *NopSender {
	return &NopSender{}
}

// Send drops the message.
func (s *NopSender) Send(_ context.Context, _ ports.PushMessage) error {
	return nil
}
