// Package mail provides a lightweight SendGrid v3 client for sending
// contact-form notifications. Uses raw HTTP calls (no SDK) to minimize
// external dependencies.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cortexa-ai/backend/internal/model"
)

const defaultBaseURL = "https://api.sendgrid.com"

// ErrNotConfigured is returned by Notify when the client lacks an API
// key or the required addresses. No network I/O is attempted.
var ErrNotConfigured = errors.New("mail: not configured")

// APIError carries the provider's diagnostic payload when SendGrid
// rejects a request (invalid sender domain, malformed payload, quota).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mail: sendgrid returned %d: %s", e.StatusCode, e.Body)
}

// Client is the outbound notification interface. Every failure mode is
// non-fatal to callers: the intake pipeline logs errors and moves on.
type Client interface {
	// Configured reports whether the client has everything it needs to
	// attempt delivery.
	Configured() bool

	// Notify sends the admin alert for a stored submission and, when
	// enabled, a confirmation copy to the submitter. One attempt, no
	// retries.
	Notify(ctx context.Context, sub *model.ContactSubmission) error
}

// RealClient dispatches through the SendGrid v3 mail send endpoint.
type RealClient struct {
	apiKey           string
	fromEmail        string
	adminEmail       string
	sendConfirmation bool
	baseURL          string
	httpClient       *http.Client
}

// NewClient creates a RealClient. Any of apiKey, fromEmail, or
// adminEmail may be empty, in which case the client reports itself
// unconfigured and Notify short-circuits.
func NewClient(apiKey, fromEmail, adminEmail string, sendConfirmation bool) *RealClient {
	return &RealClient{
		apiKey:           apiKey,
		fromEmail:        fromEmail,
		adminEmail:       adminEmail,
		sendConfirmation: sendConfirmation,
		baseURL:          defaultBaseURL,
		httpClient:       &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Client = (*RealClient)(nil)

func (c *RealClient) Configured() bool {
	return c.apiKey != "" && c.fromEmail != "" && c.adminEmail != ""
}

func (c *RealClient) Notify(ctx context.Context, sub *model.ContactSubmission) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	subject := fmt.Sprintf("New contact submission from %s", sub.Name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nCompany: %s\nSubmitted: %s\n\n%s\n",
		sub.Name, sub.Email, sub.Company,
		sub.CreatedAt.Format(time.RFC3339), sub.Message,
	)
	if err := c.send(ctx, c.adminEmail, subject, body); err != nil {
		return err
	}

	if !c.sendConfirmation {
		return nil
	}
	confirmation := fmt.Sprintf(
		"Hi %s,\n\nThanks for getting in touch with Cortexa AI. "+
			"We received your message and will get back to you shortly.\n\n"+
			"Your message:\n%s\n",
		sub.Name, sub.Message,
	)
	return c.send(ctx, sub.Email, "We received your message", confirmation)
}

// sendRequest is the SendGrid v3 mail/send payload.
type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (c *RealClient) send(ctx context.Context, to, subject, body string) error {
	payload := sendRequest{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: c.fromEmail},
		Subject:          subject,
		Content:          []content{{Type: "text/plain", Value: body}},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v3/mail/send", bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// SendGrid error bodies are small JSON documents; cap the read
		// so a misbehaving proxy cannot balloon memory.
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(diag)}
	}
	return nil
}
