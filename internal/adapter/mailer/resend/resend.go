// Package resend sends transactional email through the Resend HTTP API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"credit-simplicity-backend/internal/domain/mail"
)

const (
	defaultEndpoint = "https://api.resend.com/emails"
	requestTimeout  = 30 * time.Second
)

type Mailer struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

type Option func(*Mailer)

// WithEndpoint overrides the API endpoint (tests).
func WithEndpoint(url string) Option {
	return func(m *Mailer) { m.endpoint = url }
}

func New(apiKey string, opts ...Option) *Mailer {
	m := &Mailer{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Send submits one email and returns the provider's message id. Non-2xx
// responses come back as *mail.ProviderError so the HTTP layer can pass the
// provider's status through.
func (m *Mailer) Send(ctx context.Context, e mail.Email) (string, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("encode email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read email response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &mail.ProviderError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode email response: %w", err)
	}
	return out.ID, nil
}
