// Package gotrue talks to the Supabase auth (GoTrue) REST API: admin user
// provisioning, invite links, and session-token resolution.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"credit-simplicity-backend/internal/domain/identity"
)

const requestTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// New builds a client for the project at supabaseURL, authenticated with the
// service-role key (admin endpoints reject the anon key).
func New(supabaseURL, serviceRoleKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(supabaseURL, "/") + "/auth/v1",
		serviceKey: serviceRoleKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type apiError struct {
	Message   string `json:"message"`
	Msg       string `json:"msg"`
	ErrorCode string `json:"error_code"`
}

func (e *apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

func (c *Client) do(ctx context.Context, method, path, bearer string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read auth response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var ae apiError
		_ = json.Unmarshal(raw, &ae)
		if msg := ae.text(); msg != "" {
			return fmt.Errorf("auth api %d: %s", res.StatusCode, msg)
		}
		return fmt.Errorf("auth api %d: %s", res.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode auth response: %w", err)
		}
	}
	return nil
}

// CreateAccount provisions an unconfirmed account carrying the applicant's
// profile metadata. A GoTrue "already been registered" rejection maps to
// identity.ErrAlreadyRegistered.
func (c *Client) CreateAccount(ctx context.Context, email string, meta identity.Metadata) (string, error) {
	payload := map[string]any{
		"email":         email,
		"email_confirm": false,
		"user_metadata": meta,
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/users", c.serviceKey, payload, &out); err != nil {
		if strings.Contains(err.Error(), "already been registered") {
			return "", identity.ErrAlreadyRegistered
		}
		return "", err
	}
	return out.ID, nil
}

// GenerateInviteLink mints an account-setup invite that lands on redirectTo
// after the user confirms.
func (c *Client) GenerateInviteLink(ctx context.Context, email, redirectTo string) (string, error) {
	payload := map[string]any{
		"type":        "invite",
		"email":       email,
		"redirect_to": redirectTo,
	}
	var out struct {
		ActionLink string `json:"action_link"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/generate_link", c.serviceKey, payload, &out); err != nil {
		return "", err
	}
	return out.ActionLink, nil
}

// UserIDFromToken resolves a portal session's access token to its user id.
func (c *Client) UserIDFromToken(ctx context.Context, accessToken string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", accessToken, nil, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("auth api returned no user id")
	}
	return out.ID, nil
}
