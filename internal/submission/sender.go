// Package submission validates a roster and posts it to the external RSVP endpoint.
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mmynk/rsvp/internal/models"
)

// ErrRejected is returned by a strict sender when the endpoint answers with a non-2xx status.
var ErrRejected = errors.New("endpoint rejected submission")

// Payload is the JSON document posted to the endpoint.
type Payload struct {
	Guests []models.Guest `json:"guests"`
}

// Sender delivers a payload to the external endpoint.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}

// Mode selects how much of the endpoint's answer a sender trusts.
type Mode int

const (
	// FireAndForget treats any completed request as accepted. Only network
	// level failures (DNS, connection, timeout) are errors.
	FireAndForget Mode = iota

	// Strict also treats a non-2xx status as a transport error.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "fire-and-forget"
}

// HTTPSender posts payloads as JSON to a fixed URL.
type HTTPSender struct {
	URL    string
	Mode   Mode
	Client *http.Client
}

// NewHTTPSender creates a sender for the given endpoint using http.DefaultClient.
func NewHTTPSender(url string, mode Mode) *HTTPSender {
	return &HTTPSender{URL: url, Mode: mode, Client: http.DefaultClient}
}

// Send posts p to the endpoint. No authentication is attached.
func (s *HTTPSender) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post guests: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	slog.Debug("endpoint answered", "status", resp.StatusCode, "mode", s.Mode)

	if s.Mode == Strict && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}
	return nil
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, p Payload) error

func (f SenderFunc) Send(ctx context.Context, p Payload) error { return f(ctx, p) }
