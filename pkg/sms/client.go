package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"

	"github.com/medorahq/medora_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client     *smsir.Client
	templateID string
	enabled    bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:     client,
		templateID: cfg.SMSIR.TemplateID,
		enabled:    true,
	}, nil
}

// SendTemplate sends a templated SMS to the specified phone number.
// If SMS is disabled, this is a no-op and returns nil.
//
// The template is addressed by sms.ir template ID and receives params as
// key/value substitutions; the default configured template is used when
// templateID is empty.
func (c *Client) SendTemplate(ctx context.Context, phoneNumber, templateID string, params map[string]string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		templateID = c.templateID
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}
	if len(params) == 0 {
		return fmt.Errorf("at least one template parameter is required")
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     phoneNumber,
		TemplateID: templateID,
	}
	for k, v := range params {
		req.Parameters = append(req.Parameters, smsir.UltraFastParameter{Key: k, Value: v})
	}

	_, err := c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
