// Package emailjs forwards contact form submissions to the EmailJS hosted
// e-mail delivery service.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the EmailJS send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Public account identifiers used by the landing page.
const (
	DefaultPublicKey  = "vBH7wkuSP3OO2riWW"
	DefaultServiceID  = "service_56133hz"
	DefaultTemplateID = "template_qa3zl06"
)

// ErrNotConfigured is returned when the client lacks account identifiers.
var ErrNotConfigured = errors.New("emailjs: missing public key, service or template id")

// APIError is returned when the service rejects a message.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("emailjs: send failed with status %d: %s", e.StatusCode, e.Body)
}

// Client sends templated e-mails.
type Client struct {
	PublicKey  string
	ServiceID  string
	TemplateID string
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient returns a client for the landing page account.
func NewClient() *Client {
	return &Client{
		PublicKey:  DefaultPublicKey,
		ServiceID:  DefaultServiceID,
		TemplateID: DefaultTemplateID,
		Endpoint:   DefaultEndpoint,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type request struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send renders the configured template with params and delivers it.
func (c *Client) Send(ctx context.Context, params map[string]string) error {
	if c.PublicKey == "" || c.ServiceID == "" || c.TemplateID == "" {
		return ErrNotConfigured
	}
	body, err := json.Marshal(request{
		ServiceID:      c.ServiceID,
		TemplateID:     c.TemplateID,
		UserID:         c.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("emailjs: encoding request: %w", err)
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: sending: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return &APIError{StatusCode: resp.StatusCode, Body: string(msg)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
