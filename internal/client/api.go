// Package client is the Go counterpart of the browser chat UI: it keeps a
// session's history and talks to the chat endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"daoxue-backend/internal/models"
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat endpoint returned status %d", e.StatusCode)
}

// API posts conversations to the chat endpoint.
type API struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewAPI(endpoint string) *API {
	return &API{Endpoint: endpoint, HTTPClient: http.DefaultClient}
}

// Send posts the full history and mode. The returned reply is the raw
// "reply" field, possibly empty.
func (a *API) Send(ctx context.Context, history []models.ChatMessage, mode models.Mode) (string, error) {
	payload, err := json.Marshal(models.ChatRequest{Messages: history, Mode: mode})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach chat endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	var out struct {
		Reply any `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode reply: %w", err)
	}
	reply, _ := out.Reply.(string)
	return reply, nil
}
