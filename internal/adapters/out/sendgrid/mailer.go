// Package sendgrid implements the MailSender port on top of the SendGrid
// v3 Mail Send API.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultMailEndpoint is the production SendGrid Mail Send endpoint.
const DefaultMailEndpoint = "https://api.sendgrid.com/v3/mail/send"

// Mailer sends plain-text email via SendGrid.
type Mailer struct {
	endpoint  string
	apiKey    string
	fromEmail string
	client    *http.Client
}

// NewMailer creates a mailer against the production endpoint.
func NewMailer(apiKey, fromEmail string) *Mailer {
	return NewMailerWithEndpoint(DefaultMailEndpoint, apiKey, fromEmail)
}

// NewMailerWithEndpoint creates a mailer against a custom endpoint, used by
// tests to point at a local server.
func NewMailerWithEndpoint(endpoint, apiKey, fromEmail string) *Mailer {
	return &Mailer{
		endpoint:  endpoint,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    http.DefaultClient,
	}
}

// Send delivers one plain-text message to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	payload := sgMailPayload{
		Personalizations: []sgPersonalization{{
			To: []sgAddress{{Email: to}},
		}},
		From:    sgAddress{Email: m.fromEmail},
		Subject: subject,
		Content: []sgContent{{Type: "text/plain", Value: body}},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SendGrid payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to create SendGrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("SendGrid request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SendGrid returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// SendGrid v3 Mail Send API payload types.
type sgMailPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
