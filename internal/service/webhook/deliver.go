package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	headerSignature = "X-Webhook-Signature"
	headerEvent     = "X-Webhook-Event"
)

// Payload is the wire body of every delivery.
type Payload struct {
	Event     string `json:"event"`
	ClinicID  string `json:"clinicId"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}

// NewPayload builds the delivery body for event with data.
func NewPayload(event string, clinicID uuid.UUID, data any) Payload {
	return Payload{
		Event:     event,
		ClinicID:  clinicID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
}

// deliverer posts signed payloads. The client carries an explicit timeout so
// a stalled endpoint cannot hold a worker or a test call indefinitely.
type deliverer struct {
	client *http.Client
}

func newDeliverer(timeout time.Duration) *deliverer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &deliverer{client: &http.Client{Timeout: timeout}}
}

// deliver posts body to url signed with secret. Any non-2xx status or
// transport error is a failed delivery.
func (d *deliverer) deliver(ctx context.Context, url, secret, event string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerSignature, Signature(secret, body))
	req.Header.Set(headerEvent, event)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func encodePayload(p Payload) ([]byte, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return body, nil
}
